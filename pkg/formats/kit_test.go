package formats_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/boolean"
	"github.com/dmitrymomot/validators/pkg/formats"
	"github.com/dmitrymomot/validators/pkg/hexgroup"
	"github.com/dmitrymomot/validators/pkg/host"
	"github.com/dmitrymomot/validators/pkg/logger"
	"github.com/dmitrymomot/validators/pkg/mac"
	"github.com/dmitrymomot/validators/pkg/number"
	"github.com/dmitrymomot/validators/pkg/phone"
	"github.com/dmitrymomot/validators/pkg/policy"
	"github.com/dmitrymomot/validators/pkg/uuidfmt"
)

func buildKit(t *testing.T, log *slog.Logger) *formats.Kit {
	t.Helper()
	s, err := formats.LoadFile(writeSettings(t, settingsYAML))
	require.NoError(t, err)
	kit, err := s.Build(log)
	require.NoError(t, err)
	return kit
}

func TestKitCheck(t *testing.T) {
	kit := buildKit(t, nil)

	tests := []struct {
		name   string
		format string
		input  string
		err    error
	}{
		{"mac upper with dashes", formats.MAC, "00-1A-2B-3C-4D-5E", nil},
		{"mac lower rejected", formats.MAC, "00-1a-2b-3c-4d-5e", mac.ErrInvalid},
		{"mac separator required", formats.MAC, "001A2B3C4D5E", mac.ErrSeparatorMust},
		{"uuid bare", formats.UUID, "550e8400e29b41d4a716446655440000", nil},
		{"uuid separators rejected", formats.UUID, "550e8400-e29b-41d4-a716-446655440000", uuidfmt.ErrSeparatorDisallow},
		{"host with port", formats.Host, "example.com:80", nil},
		{"host single label", formats.Host, "intranet", host.ErrAtLeastTwoLabelsMust},
		{"host local", formats.Host, "localhost", host.ErrLocalDisallow},
		{"ip public", formats.IP, "8.8.8.8", nil},
		{"ip private", formats.IP, "10.0.0.1", host.ErrLocalDisallow},
		{"ip rejects domain", formats.IP, "example.com", host.ErrInvalid},
		{"ipv4 rejects ipv6", formats.IPv4, "2001:4860:4860::8888", host.ErrInvalid},
		{"ipv6", formats.IPv6, "2001:4860:4860::8888", nil},
		{"ipv6 rejects ipv4", formats.IPv6, "8.8.8.8", host.ErrInvalid},
		{"number", formats.Number, "0.5", nil},
		{"number negative", formats.Number, "-1", number.ErrNegativeNotAllowed},
		{"phone", formats.Phone, "+1 650-253-0000", nil},
		{"phone garbage", formats.Phone, "12", phone.ErrIncorrectFormat},
		{"boolean", formats.Boolean, "on", nil},
		{"boolean garbage", formats.Boolean, "maybe", boolean.ErrInvalid},
		{"unknown format", "email", "a@b.c", formats.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := kit.Check(tt.format, tt.input)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestKitLogsRejections(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithTextFormatter(),
		logger.WithLevel(slog.LevelDebug),
	)
	kit := buildKit(t, log)

	out := buf.String()
	assert.Contains(t, out, "validator kit ready")
	assert.Contains(t, out, "mac.separator=must")
	assert.Contains(t, out, "phone.count=2")

	buf.Reset()
	require.NoError(t, kit.Check(formats.Boolean, "yes"))
	assert.Empty(t, buf.String())

	require.Error(t, kit.Check(formats.MAC, "zz"))
	out = buf.String()
	assert.Contains(t, out, "input rejected")
	assert.Contains(t, out, "format=mac")
	assert.Contains(t, out, "input=zz")
	assert.Contains(t, out, "component=formats")
}

func TestKitAccessors(t *testing.T) {
	kit := buildKit(t, nil)

	assert.Equal(t, hexgroup.CaseUpper, kit.MAC().Case)
	assert.Equal(t, policy.Disallow, kit.UUID().Separator)
	assert.Equal(t, policy.Disallow, kit.Number().Negative)
	assert.Len(t, kit.Phone().Countries(), 2)
	assert.Equal(t, host.KindAny, kit.Host().Kinds)
	assert.Equal(t, host.KindIPv6, kit.IP(host.KindIPv6).Kinds)
	assert.Equal(t, host.KindIP, kit.IP(host.KindDomain).Kinds)

	assert.Equal(t, []string{"boolean", "host", "ip", "ipv4", "ipv6", "mac", "number", "phone", "uuid"}, kit.Formats())

	a, err := kit.MAC().Parse("00-1A-2B-3C-4D-5E")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x001a2b3c4d5e), a.Uint64())
}

func TestSettingsBuild_ZeroValue(t *testing.T) {
	kit, err := formats.Settings{Phone: formats.PhoneSettings{Countries: []string{"US"}}}.Build(nil)
	require.NoError(t, err)

	assert.NoError(t, kit.Check(formats.MAC, "00:1a:2B:3c:4d:5e"))
	assert.NoError(t, kit.Check(formats.UUID, "550E8400-E29B-41D4-A716-446655440000"))
	assert.NoError(t, kit.Check(formats.Host, "localhost:8080"))
	assert.NoError(t, kit.Check(formats.Number, "-0"))
}

func TestSettingsBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings formats.Settings
		err      error
	}{
		{
			name:     "long delimiter",
			settings: formats.Settings{MAC: formats.HexSettings{Delimiter: "::"}},
		},
		{
			name:     "hex digit delimiter",
			settings: formats.Settings{UUID: formats.HexSettings{Separator: policy.Must, Delimiter: "a"}},
			err:      hexgroup.ErrBadFormat,
		},
		{
			name:     "unknown host policy",
			settings: formats.Settings{Host: host.Validator{Port: policy.Policy(9)}},
			err:      policy.ErrUnknownPolicy,
		},
		{
			name:     "unknown number policy",
			settings: formats.Settings{Number: number.Validator{Zero: policy.Policy(9)}},
			err:      policy.ErrUnknownPolicy,
		},
		{
			name:     "unknown country",
			settings: formats.Settings{Phone: formats.PhoneSettings{Countries: []string{"ZZ"}}},
			err:      phone.ErrUnknownCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			kit, err := tt.settings.Build(nil)
			assert.Nil(t, kit)
			assert.ErrorIs(t, err, formats.ErrInvalidSettings)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestKitConcurrentCheck(t *testing.T) {
	kit := buildKit(t, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, kit.Check(formats.MAC, "00-1A-2B-3C-4D-5E"))
				assert.ErrorIs(t, kit.Check(formats.Host, "localhost"), host.ErrLocalDisallow)
			}
		}()
	}
	wg.Wait()
}
