package espn

import (
	"bytes"
	"encoding/json"
)

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
	Status       statusResponse        `json:"status"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    scoreValue   `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type statusResponse struct {
	DisplayClock string     `json:"displayClock"`
	Type         statusType `json:"type"`
}

type statusType struct {
	State       string `json:"state"`
	Description string `json:"description"`
}

// scoreValue accepts a score sent as a JSON string, a number or null.
type scoreValue string

func (s *scoreValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scoreValue(str)
		return nil
	default:
		*s = scoreValue(data)
		return nil
	}
}
