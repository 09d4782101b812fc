package i18n

import "errors"

var (
	ErrNilAdapter    = errors.New("message adapter is nil")
	ErrEmptyLanguage = errors.New("empty language code in messages")
	ErrNilMessages   = errors.New("nil messages for language")

	ErrParsingCancelled = errors.New("message parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse message content")
	ErrInvalidStructure = errors.New("invalid message structure")

	ErrLoadingCancelled     = errors.New("loading messages cancelled")
	ErrFailedToReadFile     = errors.New("failed to read message file")
	ErrNoMessageFiles       = errors.New("no message files found")
	ErrUnsupportedExtension = errors.New("unsupported message file extension")
)
