package timer

// Kind selects which per-process interval timer slot a Timer programs; see
// getitimer(2).
type Kind int

const (
	// Real counts down in real (i.e., wall clock) time. At each expiration,
	// a SIGALRM signal is generated.
	Real Kind = iota
	// Virtual counts down against the user-mode CPU time consumed by the
	// process. At each expiration, a SIGVTALRM signal is generated.
	Virtual
	// Prof counts down against the total (i.e., both user and system) CPU
	// time consumed by the process. At each expiration, a SIGPROF signal is
	// generated.
	Prof
)

const numKinds = 3

var kindNames = [numKinds]string{"real", "virtual", "prof"}

func (k Kind) String() string {
	if k.IsValid(nil) != nil {
		return "<unknown kind>"
	}

	return kindNames[k]
}

func (k Kind) IsValid([]byte) error {
	if k < Real || k > Prof {
		return ErrInvalidKind.Errorf("kind=%d", k)
	}

	return nil
}

func ParseKind(s string) (Kind, error) {
	for i := range kindNames {
		if kindNames[i] == s {
			return Kind(i), nil
		}
	}

	return Kind(-1), ErrInvalidKind.Errorf("kind=%q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if err := k.IsValid(nil); err != nil {
		return nil, err
	}

	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	u, err := ParseKind(string(b))
	if err != nil {
		return err
	}

	*k = u

	return nil
}
