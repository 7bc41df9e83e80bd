package dto

// TagSetResponse returns the user's global tag set.
type TagSetResponse struct {
	Tags []string `json:"tags"`
}

// ReplaceTagSetRequest replaces the full tag set (not incremental).
type ReplaceTagSetRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

// DeleteTagResponse reports the outcome of a tag cascade delete.
type DeleteTagResponse struct {
	Tag             string `json:"tag"`
	EntriesModified int    `json:"entriesModified"`
}
