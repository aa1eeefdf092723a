// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btclog"
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/diminutivecoin/dimd/dimconfig/version.appBuild=foo"'.
var appBuild string

type buildInfo struct {
	major, minor, patch uint
	version             string
	custom              bool
	prerelease          bool
	dirty               bool
}

var build = parseBuild(appBuild)

var userAgentName = "unknown" // dimd, compact2big...

var prereleaseTag = regexp.MustCompile(`-[0-9]+-g[0-9a-f]{8}`)

// parseBuild reads a git describe string such as dimd-v1.2.0-4-gfa3ba767-dirty.
func parseBuild(s string) buildInfo {
	b := buildInfo{version: "0.0.0-custom", custom: true}
	if len(s) == 0 {
		return b
	}
	tag := "-custom"
	if _, err := fmt.Sscanf(s, "dimd-v%d.%d.%d", &b.major, &b.minor, &b.patch); err == nil {
		tag = ""
		b.custom = false
		if x := prereleaseTag.FindString(s); len(x) > 0 {
			tag += "-" + x[strings.LastIndex(x, "-")+2:]
			b.prerelease = true
		}
		if strings.Contains(s, "-dirty") {
			tag += "-dirty"
			b.dirty = true
		}
	}
	b.version = fmt.Sprintf("%d.%d.%d%s", b.major, b.minor, b.patch, tag)
	return b
}

func IsCustom() bool {
	return build.custom
}

func IsDirty() bool {
	return build.dirty
}

func IsPrerelease() bool {
	return build.prerelease
}

func AppMajorVersion() uint {
	return build.major
}
func AppMinorVersion() uint {
	return build.minor
}
func AppPatchVersion() uint {
	return build.patch
}

func SetUserAgentName(ua string) {
	if userAgentName != "unknown" {
		panic("setting useragent to [" + ua +
			"] failed, useragent was already set to [" + userAgentName + "]")
	}
	userAgentName = ua
}

func Version() string {
	return build.version
}

func UserAgentName() string {
	return userAgentName
}

func WarnIfPrerelease(log btclog.Logger) {
	if IsCustom() || IsDirty() {
		log.Warnf("THIS IS A DEVELOPMENT VERSION, THINGS MAY BREAK")
	} else if IsPrerelease() {
		log.Infof("This is a pre-release version")
	}
}
