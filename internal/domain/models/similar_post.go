package model

// SimilarPost is a published post annotated with the number of tags it shares
// with the post being viewed.
type SimilarPost struct {
	*Post
	SameTags int `json:"same_tags"`
}
