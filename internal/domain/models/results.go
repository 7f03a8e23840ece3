package model

type PostList struct {
	Page *Page `json:"page"`
	Tag  *Tag  `json:"tag,omitempty"`
}

type PostDetail struct {
	Post         *Post          `json:"post"`
	Tags         []*Tag         `json:"tags"`
	Comments     []*Comment     `json:"comments"`
	Form         *CommentForm   `json:"form"`
	SimilarPosts []*SimilarPost `json:"similar_posts"`
}

type PostShare struct {
	Post *Post          `json:"post"`
	Form *EmailPostForm `json:"form"`
	Sent bool           `json:"sent"`
}

type CommentResult struct {
	Post    *Post        `json:"post"`
	Form    *CommentForm `json:"form"`
	Comment *Comment     `json:"comment,omitempty"`
}

type SearchResult struct {
	Form    *SearchForm `json:"form"`
	Query   *string     `json:"query,omitempty"`
	Results []*Post     `json:"results"`
}
