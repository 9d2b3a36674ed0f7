// Copyright 2026 Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/buildstock/panelsampler/logger"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

const licenseTemplate = `// Copyright %d Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

`

var (
	reHeader = regexp.MustCompile(`// Copyright (\d{4}) Buildstock Contributors`)
	reCLI    = regexp.MustCompile(`Copyright:\s*"\(c\)\s*(\d{4})\s+Buildstock Contributors"`)
)

// directories never holding sources of the workspace
var skippedDirs = map[string]bool{
	"_examples": true,
	"testdata":  true,
	"vendor":    true,
}

var yearFlag = cli.IntFlag{
	Name:  "year",
	Usage: "copyright year to set",
	Value: time.Now().Year(),
}

var yearCommand = cli.Command{
	Action: func(ctx *cli.Context) error {
		return updateYear(".", ctx.Int(yearFlag.Name), logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "header-year"))
	},
	Name:  "year",
	Usage: "Sets the year in the license header and the cli copyright of all .go files",
	Flags: []cli.Flag{&yearFlag, &logger.LogLevelFlag},
}

var checkCommand = cli.Command{
	Action: func(ctx *cli.Context) error {
		return checkHeaders(".", logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "header-check"))
	},
	Name:  "check",
	Usage: "Fails if a .go file does not start with the license header",
	Flags: []cli.Flag{&logger.LogLevelFlag},
}

var addCommand = cli.Command{
	Action: func(ctx *cli.Context) error {
		return addHeaders(".", ctx.Int(yearFlag.Name), logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "header-add"))
	},
	Name:  "add",
	Usage: "Prepends the license header to .go files lacking it",
	Flags: []cli.Flag{&yearFlag, &logger.LogLevelFlag},
}

// walkSources calls fn for every .go file below root.
func walkSources(root string, fn func(path string, content string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (skippedDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, string(data))
	})
}

func hasHeader(content string) bool {
	loc := reHeader.FindStringIndex(content)
	return loc != nil && loc[0] == 0
}

// updateYear sets the year of all license headers and cli copyrights.
func updateYear(root string, year int, log logger.Logger) error {
	replace := func(re *regexp.Regexp, content string) string {
		return re.ReplaceAllStringFunc(content, func(match string) string {
			m := re.FindStringSubmatchIndex(match)
			return match[:m[2]] + strconv.Itoa(year) + match[m[3]:]
		})
	}
	updated := 0
	err := walkSources(root, func(path string, content string) error {
		next := replace(reCLI, replace(reHeader, content))
		if next == content {
			return nil
		}
		updated++
		log.Debugf("Updating %s", path)
		return os.WriteFile(path, []byte(next), 0644)
	})
	if err != nil {
		return err
	}
	log.Noticef("Updated %d files to %d", updated, year)
	return nil
}

// checkHeaders fails when some file lacks the license header.
func checkHeaders(root string, log logger.Logger) error {
	var missing []string
	err := walkSources(root, func(path string, content string) error {
		if !hasHeader(content) {
			missing = append(missing, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, path := range missing {
		log.Warningf("Missing license header: %s", path)
	}
	if len(missing) > 0 {
		return errors.Newf("%d files lack the license header", len(missing))
	}
	return nil
}

// addHeaders prepends the license header to files without one.
func addHeaders(root string, year int, log logger.Logger) error {
	header := fmt.Sprintf(licenseTemplate, year)
	return walkSources(root, func(path string, content string) error {
		if hasHeader(content) {
			return nil
		}
		log.Infof("Adding license header to %s", path)
		return os.WriteFile(path, []byte(header+content), 0644)
	})
}
