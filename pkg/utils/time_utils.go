package utils

import "time"

// Store seconds consistently in the DB.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// AddMonths advances a unix-seconds timestamp by whole calendar months.
// Overflow follows time.AddDate semantics (Jan 31 + 1 month = Mar 2/3),
// matching how the billing window has always been computed.
func AddMonths(unixSeconds int64, months int) int64 {
	return time.Unix(unixSeconds, 0).UTC().AddDate(0, months, 0).Unix()
}

func FormatRFC3339(unixSeconds int64) string {
	if unixSeconds <= 0 {
		return ""
	}
	return time.Unix(unixSeconds, 0).UTC().Format(time.RFC3339)
}
