package xmac

import (
	"errors"
	"net"
	"strings"
	"testing"
)

var sample = AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr error
	}{
		// 冒号格式
		{"colon_lower", "aa:bb:cc:dd:ee:ff", sample, nil},
		{"colon_upper", "AA:BB:CC:DD:EE:FF", sample, nil},
		{"colon_mixed", "Aa:Bb:Cc:Dd:Ee:Ff", sample, nil},

		// 短线格式
		{"dash_lower", "aa-bb-cc-dd-ee-ff", sample, nil},
		{"dash_upper", "AA-BB-CC-DD-EE-FF", sample, nil},

		// 边界值
		{"zero", "00:00:00:00:00:00", Addr{}, nil},
		{"one", "00:00:00:00:00:01", AddrFromUint64(1), nil},
		{"broadcast", "ff:ff:ff:ff:ff:ff", Broadcast(), nil},

		// 错误
		{"empty", "", Addr{}, ErrEmpty},
		{"only_space", " \t ", Addr{}, ErrInvalidFormat},
		{"leading_space", "  aa:bb:cc:dd:ee:ff", Addr{}, ErrInvalidFormat},
		{"trailing_newline", "aa:bb:cc:dd:ee:ff\n", Addr{}, ErrInvalidFormat},
		{"padded_both", " aa-bb-cc-dd-ee-ff ", Addr{}, ErrInvalidFormat},
		{"dot_lower", "aabb.ccdd.eeff", Addr{}, ErrInvalidFormat},
		{"dot_upper", "AABB.CCDD.EEFF", Addr{}, ErrInvalidFormat},
		{"bare_lower", "aabbccddeeff", Addr{}, ErrInvalidFormat},
		{"bare_mixed", "AaBbCcDdEeFf", Addr{}, ErrInvalidFormat},
		{"word", "invalid", Addr{}, ErrInvalidFormat},
		{"bad_hex_last", "aa:bb:cc:dd:ee:gg", Addr{}, ErrInvalidFormat},
		{"bad_hex_all", "gg:hh:ii:jj:kk:ll", Addr{}, ErrInvalidFormat},
		{"bad_hex_bare", "aabbccddeegg", Addr{}, ErrInvalidFormat},
		{"bad_hex_dot", "ggbb.ccdd.eeff", Addr{}, ErrInvalidFormat},
		{"five_octets", "aa:bb:cc:dd:ee", Addr{}, ErrInvalidLength},
		{"three_octets", "aa:bb:cc", Addr{}, ErrInvalidLength},
		{"seven_octets", "aa:bb:cc:dd:ee:ff:00", Addr{}, ErrInvalidLength},
		{"eui64", "aa:bb:cc:dd:ee:ff:00:11", Addr{}, ErrInvalidLength},
		{"eui64_dash", "aa-bb-cc-dd-ee-ff-00-11", Addr{}, ErrInvalidLength},
		{"wrong_separator", "aa;bb;cc;dd;ee;ff", Addr{}, ErrInvalidFormat},
		{"mixed_separator", "aa:bb-cc:dd-ee:ff", Addr{}, ErrInvalidFormat},
		{"single_digit_groups", "a:b:c:d:e:f", Addr{}, ErrInvalidFormat},
		{"three_digit_group", "aaa:bb:cc:dd:ee:f", Addr{}, ErrInvalidFormat},
		{"dot_wrong_positions", "aab.bccdd.eeff", Addr{}, ErrInvalidFormat},
		{"bare_with_separator", "aa:bbccddeef", Addr{}, ErrInvalidFormat},
		{"bare_too_short", "aabbccddee", Addr{}, ErrInvalidFormat},
		{"inner_space", "aa:bb:cc:dd:ee: f", Addr{}, ErrInvalidFormat},
		{"signed_octet", "+a:bb:cc:dd:ee:ff", Addr{}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Parse(%q) error %T is not *ParseError", tt.input, err)
				}
				if pe.Input != tt.input {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
				}
				if got != (Addr{}) {
					t.Errorf("Parse(%q) returned partial result %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"aa:bb:cc:dd:ee:ff", true},
		{"AA:BB:CC:DD:EE:FF", true},
		{"00:00:00:00:00:00", true},
		{"aa-bb-cc-dd-ee-ff", true},
		{"invalid", false},
		{"aa:bb:cc:dd:ee:gg", false},
		{"aa:bb:cc:dd:ee", false},
		{"", false},
		{"aabb.ccdd.eeff", false},
		{"aabbccddeeff", false},
		{"  aa:bb:cc:dd:ee:ff\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("aa:bb:cc:dd:ee:gg")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"xmac: invalid format", "offset 15", `"aa:bb:cc:dd:ee:gg"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not contain %q", msg, want)
		}
	}

	_, err = Parse(strings.Repeat("z", 100))
	if err == nil || strings.Contains(err.Error(), strings.Repeat("z", 40)) {
		t.Errorf("long input not truncated in error: %v", err)
	}
}

func TestMustParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if got := MustParse("aa:bb:cc:dd:ee:ff"); got != sample {
			t.Errorf("MustParse() = %v, want %v", got, sample)
		}
	})

	t.Run("invalid_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(invalid) did not panic")
			}
		}()
		MustParse("invalid")
	})
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Addr
		wantErr error
	}{
		{"valid", []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, sample, nil},
		{"zero", []byte{0, 0, 0, 0, 0, 0}, Addr{}, nil},
		{"too_short", []byte{0xaa, 0xbb, 0xcc}, Addr{}, ErrInvalidLength},
		{"too_long", []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00}, Addr{}, ErrInvalidLength},
		{"nil", nil, Addr{}, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBytes(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromHardwareAddr(t *testing.T) {
	hw, err := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromHardwareAddr(hw)
	if err != nil || got != sample {
		t.Errorf("FromHardwareAddr() = %v, %v", got, err)
	}

	eui64, err := net.ParseMAC("aa:bb:cc:dd:ee:ff:00:11")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromHardwareAddr(eui64); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromHardwareAddr(eui64) error = %v, want ErrInvalidLength", err)
	}
}
