// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// BuildInfo carries build-time metadata injected by linker flags.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills unset values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orDefault := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}

	return BuildInfo{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("version=%s date=%s commit=%s", b.Version, b.Date, b.Commit)
}
