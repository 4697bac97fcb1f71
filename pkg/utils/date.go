package utils

import "time"

const DateLayout = "2006-01-02"

// ParseInstant aceita RFC3339 ou apenas a data (meia-noite UTC); vazio devolve nil
func ParseInstant(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if instant, err := time.Parse(time.RFC3339, value); err == nil {
		utc := instant.UTC()
		return &utc, nil
	}

	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfDayUTC trunca o instante para a meia-noite UTC do mesmo dia
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
