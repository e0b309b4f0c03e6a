package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TodayUTC retorna o dia de hoje em UTC, truncado para meia-noite.
func TodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// YesterdayUTC retorna o dia de ontem em UTC, truncado para meia-noite.
func YesterdayUTC() time.Time {
	return TodayUTC().AddDate(0, 0, -1)
}
