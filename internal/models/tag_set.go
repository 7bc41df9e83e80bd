package models

// TagSet is the dedicated per-user record holding the global tag set,
// persisted independently of individual entries (the Firestore design
// kept this under a reserved sentinel key excluded from entry
// enumeration; here it is its own table keyed by user).
type TagSet struct {
	UserID string   `json:"userID"`
	Tags   []string `json:"tags"`
	AuditFields
}
