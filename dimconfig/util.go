// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dimconfig

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/diminutivecoin/dimd/btcutil/er"
)

// CreateDefaultConfigFile writes sampleFile to destinationPath with the
// rpcuser and rpcpass lines replaced by randomly generated credentials.
func CreateDefaultConfigFile(destinationPath, sampleFile string) er.R {
	errr := os.MkdirAll(filepath.Dir(destinationPath), 0700)
	if errr != nil {
		return er.E(errr)
	}

	var userPass [2]string
	for i := 0; i < 2; i++ {
		randomBytes := make([]byte, 20)
		if _, errr = rand.Read(randomBytes); errr != nil {
			return er.E(errr)
		}
		userPass[i] = base64.StdEncoding.EncodeToString(randomBytes)
	}

	dest, errr := os.OpenFile(destinationPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if errr != nil {
		return er.E(errr)
	}
	defer dest.Close()

	for _, line := range strings.Split(sampleFile, "\n") {
		if strings.Contains(line, "rpcuser=") {
			line = "rpcuser=" + userPass[0]
		} else if strings.Contains(line, "rpcpass=") {
			line = "rpcpass=" + userPass[1]
		}
		if _, errr := dest.WriteString(line + "\n"); errr != nil {
			return er.E(errr)
		}
	}

	return nil
}

type userpass struct {
	Username string `long:"rpcuser"`
	Password string `long:"rpcpass"`
}

// ReadUserPass reads out the username and password from a config file
func ReadUserPass(filePath string) ([]string, er.R) {
	cfg := userpass{}
	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	if errr := flags.NewIniParser(parser).ParseFile(filePath); errr != nil {
		return nil, er.E(errr)
	}
	return []string{cfg.Username, cfg.Password}, nil
}
