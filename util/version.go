package util

import (
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	stdsemver "golang.org/x/mod/semver"
)

var ErrInvalidVersion = NewError("invalid version")

// Version is a "v"-prefixed semver version.
type Version struct {
	s          string
	prerelease string
	major      uint64
	minor      uint64
	patch      uint64
}

// ParseVersion parses version string and checks IsValid().
func ParseVersion(s string) (Version, error) {
	if !strings.HasPrefix(s, "v") {
		return Version{}, ErrInvalidVersion.Errorf("not 'v' prefixed, %q", s)
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, ErrInvalidVersion.Wrapf(err, "version string=%q", s)
	}

	p := Version{
		s:          "v" + v.String(),
		major:      v.Major(),
		minor:      v.Minor(),
		patch:      v.Patch(),
		prerelease: v.Prerelease(),
	}

	if err := p.IsValid(nil); err != nil {
		return Version{}, err
	}

	return p, nil
}

func MustNewVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Version) String() string { return v.s }

func (v Version) IsValid([]byte) error {
	switch s := strings.TrimSpace(v.s); {
	case len(s) < 2:
		return ErrInvalidVersion.Errorf("empty version string")
	case !strings.HasPrefix(s, "v"):
		return ErrInvalidVersion.Errorf("not 'v' prefixed, %q", s)
	case !stdsemver.IsValid(v.s):
		return ErrInvalidVersion.Errorf("invalid semver, %q", s)
	default:
		return nil
	}
}

func (v Version) Major() uint64 {
	return v.major
}

func (v Version) Minor() uint64 {
	return v.minor
}

func (v Version) Patch() uint64 {
	return v.patch
}

func (v Version) Prerelease() string {
	return v.prerelease
}

func (v Version) Compare(b Version) int {
	return stdsemver.Compare(v.s, b.s)
}

// IsCompatible checks if the given version is compatible to the target; major
// match means compatible.
func (v Version) IsCompatible(b Version) bool {
	return v.major == b.major
}

func (v Version) IsEmpty() bool {
	return len(v.s) < 1
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.s), nil
}

func (v *Version) UnmarshalText(b []byte) error {
	u, err := ParseVersion(string(b))
	if err != nil {
		return errors.WithMessage(err, "unmarshal Version")
	}

	*v = u

	return nil
}
