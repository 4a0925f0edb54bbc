package domain

import "errors"

var (
	ErrProjectExists    = errors.New("project already exists")
	ErrProjectNotFound  = errors.New("project not found")
	ErrMRExists         = errors.New("merge request already exists")
	ErrMRNotFound       = errors.New("merge request not found")
	ErrReviewExists     = errors.New("reviewer already reviewed this merge request")
	ErrPipelineExists   = errors.New("pipeline already exists for this commit")
	ErrPipelineNotFound = errors.New("pipeline not found")
	ErrInvalidArgument  = errors.New("invalid argument")
)
