package snapshot

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/miku/clam"
)

// MirrorOptions configure a full bucket sync via rclone, which handles the
// anonymous S3 access and incremental transfer well. Requires an "aws" remote
// of type s3 in rclone.conf, cf.
// https://docs.openalex.org/download-all-data/download-to-your-machine
type MirrorOptions struct {
	Dir       string // local mirror root
	Transfers int
	Checkers  int
}

// externalTool is a required binary with a pointer to install docs.
type externalTool struct {
	Name string
	Docs string
}

var mirrorTools = []externalTool{
	{Name: "rclone", Docs: "https://rclone.org/install/"},
}

// CheckTools verifies the external binaries the mirror path shells out to.
func CheckTools() []error {
	var errs []error
	for _, tool := range mirrorTools {
		if _, err := exec.LookPath(tool.Name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w [%s]", tool.Name, err, tool.Docs))
		}
	}
	return errs
}

// Mirror syncs the complete bucket into opts.Dir. A full sync moves a few
// hundred GB and may run for hours.
func Mirror(opts MirrorOptions) error {
	if errs := CheckTools(); len(errs) > 0 {
		return errs[0]
	}
	if opts.Transfers == 0 {
		opts.Transfers = 8
	}
	if opts.Checkers == 0 {
		opts.Checkers = 16
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return err
	}
	return clam.Run("rclone sync --transfers={{ transfers }} --checkers={{ checkers }} -P aws:/{{ bucket }} {{ dir }}", clam.Map{
		"transfers": strconv.Itoa(opts.Transfers),
		"checkers":  strconv.Itoa(opts.Checkers),
		"bucket":    DefaultBucket,
		"dir":       opts.Dir,
	})
}
