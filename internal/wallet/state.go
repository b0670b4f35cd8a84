package wallet

// User-visible failure messages.
const (
	MsgInstallProvider = "Please install MetaMask!"
	MsgConnectFailed   = "Failed to connect wallet"
)

// Button labels.
const (
	LabelConnecting = "Connecting..."
	LabelConnect    = "Connect Wallet"
	labelConnected  = "Connected: "
)

// State is a snapshot of the wallet connection.
type State struct {
	Accounts     []string
	IsConnecting bool
	Err          string // empty when there is no error
}

// IsConnected reports whether at least one account is authorized.
func (s State) IsConnected() bool { return len(s.Accounts) > 0 }

// ActiveAccount returns the first account, or "" when disconnected.
func (s State) ActiveAccount() string {
	if len(s.Accounts) == 0 {
		return ""
	}
	return s.Accounts[0]
}

// Label is the text shown on the wallet button.
func (s State) Label() string {
	switch {
	case s.IsConnecting:
		return LabelConnecting
	case s.IsConnected():
		return labelConnected + ShortAccount(s.Accounts[0])
	default:
		return LabelConnect
	}
}

func (s State) clone() State {
	out := s
	if s.Accounts != nil {
		out.Accounts = append([]string(nil), s.Accounts...)
	}
	return out
}

// ShortAccount abbreviates an identifier to its first 6 and last 4 characters.
// Identifiers shorter than that overlap rather than fail.
func ShortAccount(id string) string {
	r := []rune(id)
	head := r[:min(6, len(r))]
	tail := r[max(0, len(r)-4):]
	return string(head) + "..." + string(tail)
}
