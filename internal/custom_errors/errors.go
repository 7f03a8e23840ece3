package custom_errors

import "errors"

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrTagNotFound    = errors.New("tag not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidPostKey = errors.New("invalid post date or slug")
)

var (
	ErrDatabaseQuery       = errors.New("database query failed")
	ErrDatabaseScan        = errors.New("database scan failed")
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrTagQueryFailed      = errors.New("tag query failed")
	ErrCommentCreateFailed = errors.New("comment create failed")
	ErrCommentQueryFailed  = errors.New("comment query failed")
	ErrSearchFailed        = errors.New("search failed")
)

var (
	ErrCacheMiss      = errors.New("cache miss")
	ErrMailSendFailed = errors.New("mail send failed")
)
