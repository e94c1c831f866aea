package logger

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type options struct {
	Logger Logger `group:"Logger options"`
}

func TestLoggerFlags(t *testing.T) {
	var opts options
	rest, err := flags.NewParser(&opts, flags.None).ParseArgs([]string{
		"--log-level", "warn", "--log-format", "json", "--log-no-color", "out.json",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"out.json"}, rest)
	assert.Equal(t, "warn", opts.Logger.Level)
	assert.Equal(t, "json", opts.Logger.Format)
	assert.True(t, opts.Logger.NoColor)
}

func TestLoggerFlags_RejectsUnknownFormat(t *testing.T) {
	var opts options
	_, err := flags.NewParser(&opts, flags.None).ParseArgs([]string{"--log-format", "xml"})
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	Logger{Level: "error", Format: "json"}.Setup()
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	Logger{Level: "bogus", NoColor: true}.Setup()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
