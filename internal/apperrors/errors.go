package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller's role does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyLoggedIn indicates that the account already holds an active session.
var ErrAlreadyLoggedIn = errors.New("account already logged in")

// ErrInvalidQuantity indicates a sale or restock with a non-positive quantity.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ErrInsufficientStock indicates that a sale requested more units than are in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrChatInactive indicates an operation against a chat session that has been deactivated.
var ErrChatInactive = errors.New("chat session is inactive")
