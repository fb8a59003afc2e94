package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionDataValid(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	idle := 30 * time.Minute
	life := 8 * time.Hour

	session := func() SessionData {
		return SessionData{
			UserID:       "u1",
			Username:     "admin",
			Role:         "admin",
			SessionID:    "token",
			CreatedAt:    base,
			LastActivity: base,
		}
	}

	tests := []struct {
		name string
		mod  func(*SessionData)
		now  time.Time
		want bool
	}{
		{name: "fresh", mod: nil, now: base.Add(time.Minute), want: true},
		{name: "at idle boundary", mod: nil, now: base.Add(idle), want: true},
		{name: "past idle timeout", mod: nil, now: base.Add(idle + time.Second), want: false},
		{
			name: "activity keeps session alive",
			mod:  func(s *SessionData) { s.LastActivity = base.Add(2 * time.Hour) },
			now:  base.Add(2*time.Hour + 29*time.Minute),
			want: true,
		},
		{
			name: "absolute lifetime wins over activity",
			mod:  func(s *SessionData) { s.LastActivity = base.Add(8 * time.Hour) },
			now:  base.Add(8*time.Hour + time.Minute),
			want: false,
		},
		{
			name: "empty session id",
			mod:  func(s *SessionData) { s.SessionID = "" },
			now:  base.Add(time.Minute),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session()
			if tt.mod != nil {
				tt.mod(&s)
			}
			assert.Equal(t, tt.want, s.Valid(tt.now, idle, life))
		})
	}
}

func TestSessionDataValidNilReceiver(t *testing.T) {
	var s *SessionData
	assert.False(t, s.Valid(time.Now(), time.Minute, time.Hour))
}
