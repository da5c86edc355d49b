package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
	"github.com/DrewBradfordXYZ/chimemessaging-go/internal/shapetest"
)

const (
	channelArn = "arn:aws:chime:us-east-1:123456789012:app-instance/abc/channel/def"
	streamArn  = "arn:aws:kinesis:us-east-1:123456789012:s"
)

func TestStreamingConfiguration(t *testing.T) {
	require.Len(t, streamArn, 40)

	dt, err := ParseMessagingDataType("Channel")
	require.NoError(t, err)
	cfg := StreamingConfiguration{DataType: dt, ResourceArn: core.String(streamArn)}
	require.NoError(t, cfg.Validate())

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"DataType":"Channel","ResourceArn":"`+streamArn+`"}`, string(b))

	var back StreamingConfiguration
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, core.Equal(cfg, back))
	assert.Equal(t, cfg.String(), back.String())
}

func TestExpirationSettingsBounds(t *testing.T) {
	tests := []struct {
		days  int32
		valid bool
		kind  core.ParamErrorKind
	}{
		{0, false, core.ParamMinValue},
		{1, true, ""},
		{5475, true, ""},
		{5476, false, core.ParamMaxValue},
	}

	for _, tt := range tests {
		s := ExpirationSettings{
			ExpirationCriterion: ExpirationCriterionCreatedTimestamp,
			ExpirationDays:      core.Int32(tt.days),
		}
		err := s.Validate()
		if tt.valid {
			assert.NoError(t, err, "days=%d", tt.days)
			continue
		}
		var params *core.InvalidParamsError
		require.ErrorAs(t, err, &params, "days=%d", tt.days)
		assert.True(t, params.Has("ExpirationDays", tt.kind))
	}

	err := (&ExpirationSettings{}).Validate()
	var params *core.InvalidParamsError
	require.ErrorAs(t, err, &params)
	assert.Equal(t, []string{"ExpirationCriterion", "ExpirationDays"}, params.Fields())
}

func TestArnBounds(t *testing.T) {
	err := (&Target{MemberArn: core.String("arn")}).Validate()
	var params *core.InvalidParamsError
	require.ErrorAs(t, err, &params)
	assert.True(t, params.Has("MemberArn", core.ParamMinLen))

	assert.NoError(t, (&Target{MemberArn: core.String(channelArn)}).Validate())
	assert.NoError(t, (&Target{}).Validate(), "optional fields may be absent")
}

func TestNestedValidation(t *testing.T) {
	p := Processor{
		Configuration: &ProcessorConfiguration{Lambda: &LambdaConfiguration{
			InvocationType: InvocationTypeAsync,
			ResourceArn:    core.String("arn:aws:lambda"),
		}},
		ExecutionOrder: core.Int32(4),
		FallbackAction: FallbackActionAbort,
		Name:           core.String("moderation"),
	}

	err := p.Validate()
	var params *core.InvalidParamsError
	require.ErrorAs(t, err, &params)
	assert.True(t, params.Has("ExecutionOrder", core.ParamMaxValue))
	assert.True(t, params.Has("Configuration.Lambda.ResourceArn", core.ParamMinLen))
}

func TestChannelJSON(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	ch := Channel{
		ChannelArn:       core.String(channelArn),
		Name:             core.String("general"),
		Mode:             ChannelModeRestricted,
		Privacy:          ChannelPrivacyPrivate,
		CreatedBy:        &Identity{Arn: core.String(channelArn), Name: core.String("alice")},
		CreatedTimestamp: core.Time(created),
		ExpirationSettings: &ExpirationSettings{
			ExpirationCriterion: ExpirationCriterionLastMessageTimestamp,
			ExpirationDays:      core.Int32(30),
		},
	}

	b, err := json.Marshal(ch)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, "RESTRICTED", wire["Mode"])
	assert.Equal(t, "PRIVATE", wire["Privacy"])
	assert.EqualValues(t, 1705314600, wire["CreatedTimestamp"])
	assert.NotContains(t, wire, "Metadata", "absent fields are omitted")
	assert.Contains(t, wire, "CreatedBy")

	var back Channel
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, core.Equal(ch, back))
	assert.Equal(t, ch.String(), back.String())

	back.Metadata = core.String("x")
	assert.False(t, core.Equal(ch, back))
}

func TestStringRedactsSensitive(t *testing.T) {
	tag := Tag{Key: core.String("team"), Value: core.String("secret")}
	s := tag.String()
	assert.NotContains(t, s, "team")
	assert.NotContains(t, s, "secret")
	assert.Contains(t, s, core.SensitiveRedacted)

	id := Identity{Arn: core.String(channelArn), Name: core.String("alice")}
	assert.Contains(t, id.String(), channelArn)
	assert.NotContains(t, id.String(), "alice")
}

func TestMessageAttributesJSON(t *testing.T) {
	in := `{"MessageId":"m-1","MessageAttributes":{"priority":{"StringValues":["high","urgent"]}},"Target":[{"MemberArn":"` + channelArn + `"}]}`

	var msg ChannelMessage
	require.NoError(t, json.Unmarshal([]byte(in), &msg))
	assert.Equal(t, []string{"high", "urgent"}, msg.MessageAttributes["priority"].StringValues)
	require.Len(t, msg.Target, 1)
	assert.NoError(t, msg.Validate())

	msg.MessageAttributes[""] = MessageAttributeValue{}
	err := msg.Validate()
	var params *core.InvalidParamsError
	require.ErrorAs(t, err, &params)
	assert.True(t, params.Has("MessageAttributes[]", core.ParamMinLen))
}

func TestListOrderPreserved(t *testing.T) {
	in := `[{"SubChannelId":"c"},{"SubChannelId":"a"},{"SubChannelId":"b"}]`
	var subs []SubChannelSummary
	require.NoError(t, json.Unmarshal([]byte(in), &subs))

	var ids []string
	for _, s := range subs {
		ids = append(ids, core.ToString(s.SubChannelId))
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestStructureValueSemantics(t *testing.T) {
	shapes := []struct {
		name     string
		newShape func() any
	}{
		{"AppInstanceUserMembershipSummary", func() any { return &AppInstanceUserMembershipSummary{} }},
		{"BatchChannelMemberships", func() any { return &BatchChannelMemberships{} }},
		{"BatchCreateChannelMembershipError", func() any { return &BatchCreateChannelMembershipError{} }},
		{"Channel", func() any { return &Channel{} }},
		{"ChannelAssociatedWithFlowSummary", func() any { return &ChannelAssociatedWithFlowSummary{} }},
		{"ChannelBan", func() any { return &ChannelBan{} }},
		{"ChannelBanSummary", func() any { return &ChannelBanSummary{} }},
		{"ChannelFlow", func() any { return &ChannelFlow{} }},
		{"ChannelFlowSummary", func() any { return &ChannelFlowSummary{} }},
		{"ChannelMembership", func() any { return &ChannelMembership{} }},
		{"ChannelMembershipForAppInstanceUserSummary", func() any { return &ChannelMembershipForAppInstanceUserSummary{} }},
		{"ChannelMembershipPreferences", func() any { return &ChannelMembershipPreferences{} }},
		{"ChannelMembershipSummary", func() any { return &ChannelMembershipSummary{} }},
		{"ChannelMessage", func() any { return &ChannelMessage{} }},
		{"ChannelMessageCallback", func() any { return &ChannelMessageCallback{} }},
		{"ChannelMessageStatusStructure", func() any { return &ChannelMessageStatusStructure{} }},
		{"ChannelMessageSummary", func() any { return &ChannelMessageSummary{} }},
		{"ChannelModeratedByAppInstanceUserSummary", func() any { return &ChannelModeratedByAppInstanceUserSummary{} }},
		{"ChannelModerator", func() any { return &ChannelModerator{} }},
		{"ChannelModeratorSummary", func() any { return &ChannelModeratorSummary{} }},
		{"ChannelSummary", func() any { return &ChannelSummary{} }},
		{"ElasticChannelConfiguration", func() any { return &ElasticChannelConfiguration{} }},
		{"ExpirationSettings", func() any { return &ExpirationSettings{} }},
		{"Identity", func() any { return &Identity{} }},
		{"LambdaConfiguration", func() any { return &LambdaConfiguration{} }},
		{"MessageAttributeValue", func() any { return &MessageAttributeValue{} }},
		{"MessagingSessionEndpoint", func() any { return &MessagingSessionEndpoint{} }},
		{"Processor", func() any { return &Processor{} }},
		{"ProcessorConfiguration", func() any { return &ProcessorConfiguration{} }},
		{"PushNotificationConfiguration", func() any { return &PushNotificationConfiguration{} }},
		{"PushNotificationPreferences", func() any { return &PushNotificationPreferences{} }},
		{"SearchField", func() any { return &SearchField{} }},
		{"StreamingConfiguration", func() any { return &StreamingConfiguration{} }},
		{"SubChannelSummary", func() any { return &SubChannelSummary{} }},
		{"Tag", func() any { return &Tag{} }},
		{"Target", func() any { return &Target{} }},
	}
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			shapetest.Check(t, tt.newShape)
		})
	}
}
