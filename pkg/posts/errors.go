package post

import "errors"

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrAccessDenied = errors.New("access denied")
var ErrWrongCategory = errors.New("wrong category")
var ErrValidation = errors.New("validation failed")
var ErrThumbnailTooBig = errors.New("thumbnail too big")
var ErrCreateFailed = errors.New("create failed")
var ErrDeleteFailed = errors.New("delete failed")
var ErrDependency = errors.New("dependency failed")
