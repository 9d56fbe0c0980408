package harness

import (
	"io"

	"credential-keeper/internal/listops"
	"credential-keeper/internal/numeric"
	"credential-keeper/internal/security"
)

// Suite is one group of checks.
type Suite func(r *Recorder)

// Suites lists every suite in the order RunAll executes them.
var Suites = []Suite{
	LessThan,
	AddLists,
	SecurityAccessors,
	SecurityCheckCredentials,
	SecurityUpdatePassword,
}

// RunAll runs every suite against out and returns the number of failures.
func RunAll(out io.Writer) int {
	r := NewRecorder(out)
	for _, suite := range Suites {
		suite(r)
	}
	return r.Failures()
}

func LessThan(r *Recorder) {
	r.Equal("less_than float less", numeric.Compare(1.0, 2.0), 1)
	r.Equal("less_than float greater", numeric.Compare(3.7, 1.2), -1)
	r.Equal("less_than float equal", numeric.Compare(2.5, 2.5), 0)
	r.Equal("less_than non-floats", numeric.Compare(1, 2), 0)
	r.Equal("less_than mixed types", numeric.Compare(1.0, 2), 0)
}

func AddLists(r *Recorder) {
	r.Equal("addLists ints equal length",
		listops.Combine(listops.List{1, 2, 3}, listops.List{4, 5, 6}), listops.List{5, 7, 9})
	r.Equal("addLists strings equal length",
		listops.Combine(listops.List{"a", "b"}, listops.List{"x", "y"}), listops.List{"ax", "by"})
	r.Equal("addLists unequal length",
		listops.Combine(listops.List{1, 2}, listops.List{10}), listops.List{})
	r.Equal("addLists non-lists",
		listops.Combine(listops.List{1, 2}, listops.Tuple{3, 4}), listops.List{})
	r.Equal("addLists invalid addition",
		listops.Combine(listops.List{1, nil}, listops.List{2, 3}), listops.List{})
}

func SecurityAccessors(r *Recorder) {
	s := security.New("bob", "Fail1")
	r.Equal("Security init login", s.Login(), "bob")
	r.Equal("Security init password", s.Password(), "Fail1")
}

func SecurityCheckCredentials(r *Recorder) {
	s := security.New("alice", "Good1Pass")
	r.True("checkCredentials true", s.CheckCredentials("alice", "Good1Pass"))
	r.True("checkCredentials false wrong pwd", !s.CheckCredentials("alice", "BadPass1"))
	r.True("checkCredentials false wrong login", !s.CheckCredentials("ALICE", "Good1Pass"))
}

func SecurityUpdatePassword(r *Recorder) {
	s := security.New("user", "Abc123")

	ok := s.UpdatePassword("user", "Abc123", "NewPass1")
	r.True("updatePassword success returns True", ok)
	r.Equal("updatePassword success changed pwd", s.Password(), "NewPass1")

	// Every row starts from the current password "NewPass1".
	rejected := []struct {
		name      string
		login     string
		presented string
		newPass   string
	}{
		{"wrong login", "USER", "NewPass1", "Another1A"},
		{"wrong old", "user", "notOld", "Another1A"},
		{"no lowercase", "user", "NewPass1", "NOPASS1"},
		{"no uppercase", "user", "NewPass1", "newpass1"},
		{"no digit", "user", "NewPass1", "NoDigits"},
	}
	for _, tc := range rejected {
		old := s.Password()
		ok := s.UpdatePassword(tc.login, tc.presented, tc.newPass)
		r.True("updatePassword "+tc.name+" returns False", !ok)
		r.Equal("updatePassword "+tc.name+" unchanged", s.Password(), old)
	}

	s.UpdatePassword("user", "NewPass1", "OkayPass2")
	s.UpdatePassword("user", "OkayPass2", "GreatPass3")
	s.UpdatePassword("user", "GreatPass3", "Zesty4Pass")

	old := s.Password()
	ok = s.UpdatePassword("user", old, "OkayPass2")
	r.True("updatePassword reuse last-3 returns False", !ok)
	r.Equal("updatePassword reuse last-3 unchanged", s.Password(), old)

	old = s.Password()
	ok = s.UpdatePassword("user", old, "NewPass1")
	r.True("updatePassword reuse older-than-3 returns True", ok)
	r.Equal("updatePassword reuse older-than-3 changed", s.Password(), "NewPass1")
}
