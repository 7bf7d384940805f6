package models

import "time"

// AnalysisRecord is the audit trail of one media analysis. Records are
// immutable once written.
//
// UserSessionID carries the owning user's session token: the public listing
// joins analysis_results with users and exposes the token, not the numeric id.
type AnalysisRecord struct {
	ID            int64
	UserID        int64
	UserSessionID string
	AIResponse    string
	FileName      string
	FilePath      string
	Timestamp     time.Time
}
