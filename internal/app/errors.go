// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// ErrNoPassword is returned when key generation is asked to lock a key but
// the passwords file holds no line.
var ErrNoPassword = errors.New("passwords file is empty")
