package portal

import "errors"

var (
	ErrRuntimeUnavailable = errors.New("container runtime not available")
	ErrBuildFailed        = errors.New("image build failed")
	ErrStartFailed        = errors.New("container start failed")
	ErrCreateFailed       = errors.New("container create failed")
	ErrStopFailed         = errors.New("container stop failed")
	ErrRemoveFailed       = errors.New("container removal failed")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrQueryFailed        = errors.New("runtime query failed")
)
