package matchtests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

type fakeBackendOptions struct {
	failCreateEvent           bool
	embeddingAsArray          bool
	bothReadyOnFirstHandshake bool
	icebreaker                string
}

// fakeBackend is an in-memory implementation of the matchmaking API, mounted under /api.
type fakeBackend struct {
	opts         fakeBackendOptions
	lock         sync.Mutex
	nextID       int
	events       []map[string]interface{}
	users        map[string]map[string]interface{}
	participants map[string][]string
	matches      []map[string]interface{}
	requests     []string
}

func newFakeBackend(opts fakeBackendOptions) *fakeBackend {
	return &fakeBackend{
		opts:         opts,
		users:        make(map[string]map[string]interface{}),
		participants: make(map[string][]string),
	}
}

func (b *fakeBackend) requestLog() []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *fakeBackend) newID(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", prefix, b.nextID)
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)

	if !strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, 404, map[string]interface{}{"error": "not found"})
		return
	}
	var body map[string]interface{}
	if r.Method == "POST" {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, 400, map[string]interface{}{"error": err.Error()})
			return
		}
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/"), "/"), "/")
	route := r.Method + " " + parts[0]
	switch {
	case route == "POST events" && len(parts) == 1:
		b.createEvent(w, body)
	case route == "GET events" && len(parts) == 1:
		writeJSON(w, 200, map[string]interface{}{"events": b.events})
	case route == "GET events" && len(parts) == 2:
		b.getEvent(w, parts[1])
	case route == "POST events" && len(parts) == 3 && parts[2] == "match":
		b.startMatching(w, parts[1], body)
	case route == "POST users" && len(parts) == 2 && parts[1] == "register":
		b.registerUser(w, body)
	case route == "GET matches" && len(parts) == 3 && parts[1] == "user":
		b.userMatches(w, parts[2])
	case route == "GET matches" && len(parts) == 2:
		if m := b.findMatch(parts[1]); m != nil {
			writeJSON(w, 200, map[string]interface{}{"match": m})
		} else {
			writeJSON(w, 200, map[string]interface{}{"match": nil})
		}
	case route == "POST matches" && len(parts) == 3 && parts[2] == "handshake":
		b.handshake(w, parts[1], body)
	default:
		writeJSON(w, 404, map[string]interface{}{"error": "not found"})
	}
}

func (b *fakeBackend) createEvent(w http.ResponseWriter, body map[string]interface{}) {
	if b.opts.failCreateEvent {
		writeJSON(w, 500, map[string]interface{}{"error": "database unavailable"})
		return
	}
	event := map[string]interface{}{
		"id":                 b.newID("event"),
		"name":               body["name"],
		"theme":              body["theme"],
		"round_duration_sec": body["round_duration_sec"],
		"status":             "draft",
	}
	b.events = append(b.events, event)
	writeJSON(w, 200, map[string]interface{}{"success": true, "event": event})
}

func (b *fakeBackend) findEvent(id string) map[string]interface{} {
	for _, e := range b.events {
		if e["id"] == id {
			return e
		}
	}
	return nil
}

func (b *fakeBackend) getEvent(w http.ResponseWriter, id string) {
	event := b.findEvent(id)
	if event == nil {
		writeJSON(w, 404, map[string]interface{}{"error": "Etkinlik bulunamadı"})
		return
	}
	participants := []interface{}{}
	for _, userID := range b.participants[id] {
		participants = append(participants, b.users[userID])
	}
	writeJSON(w, 200, map[string]interface{}{"event": event, "participants": participants})
}

func (b *fakeBackend) registerUser(w http.ResponseWriter, body map[string]interface{}) {
	eventID, _ := body["event_id"].(string)
	if b.findEvent(eventID) == nil {
		writeJSON(w, 400, map[string]interface{}{"error": "unknown event"})
		return
	}
	var embedding interface{} = "[0.12, -0.5, 0.33]"
	if b.opts.embeddingAsArray {
		embedding = []float64{0.12, -0.5, 0.33}
	}
	user := map[string]interface{}{
		"id":             b.newID("user"),
		"email":          body["email"],
		"full_name":      body["full_name"],
		"company":        body["company"],
		"position":       body["position"],
		"current_intent": body["current_intent"],
		"embedding":      embedding,
	}
	b.users[user["id"].(string)] = user
	b.participants[eventID] = append(b.participants[eventID], user["id"].(string))
	writeJSON(w, 200, map[string]interface{}{"success": true, "user": user})
}

func (b *fakeBackend) startMatching(w http.ResponseWriter, eventID string, body map[string]interface{}) {
	if b.findEvent(eventID) == nil {
		writeJSON(w, 404, map[string]interface{}{"error": "Etkinlik bulunamadı"})
		return
	}
	users := b.participants[eventID]
	var created []interface{}
	for i := 0; i+1 < len(users); i += 2 {
		m := map[string]interface{}{
			"id":           b.newID("match"),
			"event_id":     eventID,
			"user_a_id":    users[i],
			"user_b_id":    users[i+1],
			"round_number": body["round_number"],
			"table_number": i/2 + 1,
			"handshake_a":  false,
			"handshake_b":  false,
			"status":       "pending",
		}
		if b.opts.icebreaker != "" {
			m["icebreaker_question"] = b.opts.icebreaker
		} else {
			m["icebreaker_question"] = FallbackIcebreaker
		}
		b.matches = append(b.matches, m)
		created = append(created, m)
	}
	if len(created) == 0 {
		writeJSON(w, 200, map[string]interface{}{"success": false, "message": "not enough participants"})
		return
	}
	writeJSON(w, 200, map[string]interface{}{"success": true, "matches": created})
}

func (b *fakeBackend) findMatch(id string) map[string]interface{} {
	for _, m := range b.matches {
		if m["id"] == id {
			return m
		}
	}
	return nil
}

func (b *fakeBackend) userMatches(w http.ResponseWriter, userID string) {
	ret := []interface{}{}
	for _, m := range b.matches {
		userA, userB := m["user_a_id"].(string), m["user_b_id"].(string)
		var partnerID string
		switch userID {
		case userA:
			partnerID = userB
		case userB:
			partnerID = userA
		default:
			continue
		}
		entry := map[string]interface{}{}
		for k, v := range m {
			entry[k] = v
		}
		partner := b.users[partnerID]
		entry["partner"] = map[string]interface{}{"id": partner["id"], "full_name": partner["full_name"]}
		ret = append(ret, entry)
	}
	writeJSON(w, 200, map[string]interface{}{"matches": ret})
}

func (b *fakeBackend) handshake(w http.ResponseWriter, matchID string, body map[string]interface{}) {
	m := b.findMatch(matchID)
	if m == nil {
		writeJSON(w, 404, map[string]interface{}{"error": "Eşleşme bulunamadı"})
		return
	}
	userID, _ := body["user_id"].(string)
	var field, other string
	switch userID {
	case m["user_a_id"].(string):
		field, other = "handshake_a", "handshake_b"
	case m["user_b_id"].(string):
		field, other = "handshake_b", "handshake_a"
	default:
		writeJSON(w, 403, map[string]interface{}{"error": "Bu eşleşmede yetkisiz kullanıcı"})
		return
	}
	otherReady := m[other] == true
	m[field] = true
	if otherReady {
		m["status"] = "active"
	}
	writeJSON(w, 200, map[string]interface{}{
		"success":   true,
		"match":     m,
		"bothReady": otherReady || b.opts.bothReadyOnFirstHandshake,
	})
}

func writeJSON(w http.ResponseWriter, status int, obj interface{}) {
	data, _ := json.Marshal(obj)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
