package wallet

import "testing"

func TestShortAccount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0xABCDEF1234560000000000000000000000000001", "0xABCD...0001"},
		{"0x1234567890", "0x1234...7890"},
		{"0x12", "0x12...0x12"},
		{"", "..."},
	}
	for _, tc := range cases {
		if got := ShortAccount(tc.in); got != tc.want {
			t.Fatalf("ShortAccount(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLabelPrefersConnecting(t *testing.T) {
	st := State{Accounts: []string{"0xABCDEF1234560000000000000000000000000001"}, IsConnecting: true}
	if got := st.Label(); got != LabelConnecting {
		t.Fatalf("label = %q, want %q", got, LabelConnecting)
	}
	st.IsConnecting = false
	if got := st.Label(); got != "Connected: 0xABCD...0001" {
		t.Fatalf("label = %q", got)
	}
}

func TestZeroStateIsDisconnected(t *testing.T) {
	var st State
	if st.IsConnected() || st.IsConnecting || st.Err != "" {
		t.Fatalf("zero state not disconnected: %+v", st)
	}
	if st.ActiveAccount() != "" {
		t.Fatalf("active account = %q", st.ActiveAccount())
	}
	if st.Label() != LabelConnect {
		t.Fatalf("label = %q", st.Label())
	}
}
