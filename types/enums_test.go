package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
)

func TestEnumValuesRoundTrip(t *testing.T) {
	require.Len(t, EnumNames(), 17)

	for _, name := range EnumNames() {
		t.Run(name, func(t *testing.T) {
			values, ok := EnumValues(name)
			require.True(t, ok)
			require.NotEmpty(t, values)

			seen := map[string]bool{}
			for _, v := range values {
				assert.False(t, seen[v], "duplicate value %s", v)
				seen[v] = true

				got, err := core.ParseEnum(name, v, values)
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}
		})
	}

	_, ok := EnumValues("Bogus")
	assert.False(t, ok)
}

func TestParseEnums(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		dt, err := ParseMessagingDataType("Channel")
		require.NoError(t, err)
		assert.Equal(t, MessagingDataTypeChannel, dt)
		assert.Equal(t, "Channel", dt.String())

		p, err := ParseChannelMessagePersistenceType("NON_PERSISTENT")
		require.NoError(t, err)
		assert.Equal(t, ChannelMessagePersistenceTypeNonPersistent, p)

		n, err := ParseNetworkType("IPV4_ONLY")
		require.NoError(t, err)
		assert.Equal(t, NetworkTypeIpv4Only, n)
	})

	t.Run("unknown values fail", func(t *testing.T) {
		_, err := ParseMessagingDataType("Bogus")
		var invalid *core.InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "MessagingDataType", invalid.Field)
		assert.Equal(t, []string{"Channel", "ChannelMessage"}, invalid.Allowed)

		_, err = ParseSortOrder("")
		assert.Error(t, err)

		// Matching is case-sensitive.
		_, err = ParseChannelMode("restricted")
		assert.Error(t, err)
	})

	t.Run("IsKnown and EnumName", func(t *testing.T) {
		assert.True(t, ChannelPrivacyPublic.IsKnown())
		assert.False(t, ChannelPrivacy("SECRET").IsKnown())
		assert.False(t, ChannelPrivacy("").IsKnown())
		assert.Equal(t, "ChannelPrivacy", ChannelPrivacyPrivate.EnumName())
	})

	t.Run("values are in definition order", func(t *testing.T) {
		assert.Equal(t, []SortOrder{SortOrderAscending, SortOrderDescending}, SortOrder("").Values())
		assert.Equal(t, []AllowNotifications{AllowNotificationsAll, AllowNotificationsNone, AllowNotificationsFiltered},
			AllowNotifications("").Values())
	})
}

func TestEnumJSON(t *testing.T) {
	var cfg StreamingConfiguration
	err := json.Unmarshal([]byte(`{"DataType":"ChannelMessage"}`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, MessagingDataTypeChannelMessage, cfg.DataType)

	err = json.Unmarshal([]byte(`{"DataType":"Bogus"}`), &cfg)
	var invalid *core.InvalidValueError
	assert.ErrorAs(t, err, &invalid)

	b, err := json.Marshal(PushNotificationConfiguration{Type: PushNotificationTypeVoip})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type":"VOIP"}`, string(b))
}
