package util

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type testVersion struct {
	suite.Suite
}

func (t *testVersion) TestParse() {
	v, err := ParseVersion("v1.2.3-rc4")
	t.NoError(err)

	t.Equal("v1.2.3-rc4", v.String())
	t.Equal(uint64(1), v.Major())
	t.Equal(uint64(2), v.Minor())
	t.Equal(uint64(3), v.Patch())
	t.Equal("rc4", v.Prerelease())
}

func (t *testVersion) TestParseInvalid() {
	_, err := ParseVersion("1.2.3")
	t.ErrorIs(err, ErrInvalidVersion)

	_, err = ParseVersion("vshowme")
	t.ErrorIs(err, ErrInvalidVersion)

	_, err = ParseVersion("")
	t.ErrorIs(err, ErrInvalidVersion)
}

func (t *testVersion) TestCompare() {
	a := MustNewVersion("v1.2.3")
	b := MustNewVersion("v1.3.0")

	t.Equal(-1, a.Compare(b))
	t.Equal(1, b.Compare(a))
	t.Equal(0, a.Compare(MustNewVersion("v1.2.3")))
}

func (t *testVersion) TestIsCompatible() {
	a := MustNewVersion("v1.2.3")

	t.True(a.IsCompatible(MustNewVersion("v1.9.9")))
	t.False(a.IsCompatible(MustNewVersion("v2.0.0")))
}

func (t *testVersion) TestMarshalText() {
	a := MustNewVersion("v1.2.3")

	b, err := a.MarshalText()
	t.NoError(err)
	t.Equal("v1.2.3", string(b))

	var u Version
	t.NoError(u.UnmarshalText(b))
	t.Equal(0, a.Compare(u))

	t.Error(u.UnmarshalText([]byte("showme")))
}

func (t *testVersion) TestIsEmpty() {
	t.True(Version{}.IsEmpty())
	t.False(MustNewVersion("v0.0.1").IsEmpty())
}

func TestVersion(t *testing.T) {
	suite.Run(t, new(testVersion))
}
