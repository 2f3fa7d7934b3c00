package utils

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/hweb3/go-accounts/common"
)

type DirectoryString struct {
	Value string
}

func (ds *DirectoryString) String() string {
	return ds.Value
}

func (ds *DirectoryString) Set(value string) error {
	ds.Value = expandPath(value)
	return nil
}

// Custom cli.Flag type which expand the received string to an absolute path.
// e.g. ~/wallets -> /home/username/wallets
type DirectoryFlag struct {
	Name  string
	Value DirectoryString
	Usage string
}

func (df DirectoryFlag) String() string {
	fmtString := "%s %v\t%v"
	if len(df.Value.Value) > 0 {
		fmtString = "%s \"%v\"\t%v"
	}
	return fmt.Sprintf(fmtString, prefixedNames(df.Name), df.Value.Value, df.Usage)
}

func eachName(longName string, fn func(string)) {
	for _, name := range strings.Split(longName, ",") {
		fn(strings.TrimSpace(name))
	}
}

// Apply registers the flag under each of its names.
func (df DirectoryFlag) Apply(set *flag.FlagSet) {
	eachName(df.Name, func(name string) {
		set.Var(&df.Value, name, df.Usage)
	})
}

func (df DirectoryFlag) GetName() string {
	return df.Name
}

func prefixedNames(fullName string) (prefixed string) {
	parts := strings.Split(fullName, ",")
	for i, name := range parts {
		name = strings.TrimSpace(name)
		prefixed += prefixFor(name) + name
		if i < len(parts)-1 {
			prefixed += ", "
		}
	}
	return
}

func prefixFor(name string) string {
	if len(name) == 1 {
		return "-"
	}
	return "--"
}

func expandPath(p string) string {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := common.HomeDir(); home != "" {
			p = home + p[1:]
		}
	}
	return path.Clean(os.ExpandEnv(p))
}
