package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoRecipients is returned for a distribution naming neither
	// recipients nor a privacy group.
	ErrNoRecipients = errors.New("no recipients provided")

	// ErrUnknownSender is returned when the sending identity is not held by
	// this node's enclave.
	ErrUnknownSender = errors.New("sender key is not held by this node")

	ErrPayloadNotFound = errors.New("payload not found")

	// ErrPrivacyGroupNotFound is returned by lookups of unknown groups.
	ErrPrivacyGroupNotFound = errors.New("privacy group not found")

	// ErrPrivacyGroupUnavailable is returned when distributing to a group
	// that does not exist or was deleted.
	ErrPrivacyGroupUnavailable = errors.New("privacy group unavailable")

	ErrSenderNotMember         = errors.New("sender is not a member of the privacy group")
	ErrGroupMembershipMismatch = errors.New("privacy group membership does not match its identity")
	ErrLegacyGroupImmutable    = errors.New("legacy privacy groups cannot be deleted")

	// ErrUnknownNode marks a recipient with no known node URL. It is only
	// ever reported inside push outcomes.
	ErrUnknownNode = errors.New("no node url known for recipient")
)
