package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	var log Logger = &Noop{}
	log.Debugf("a %s", "b")
	log.Infof("a %s", "b")
	log.Warnf("a %s", "b")
	log.Errorf("a %s", "b")
}

func TestStdOut(t *testing.T) {
	var messages []string
	log := &stdOut{print: func(msg string) {
		messages = append(messages, msg)
	}}

	log.Debugf("d %d", 1)
	log.Infof("i %d", 2)
	log.Warnf("w %d", 3)
	log.Errorf("e %d", 4)

	assert.Equal(t, []string{
		"[DEBUG] d 1",
		"[INFO] i 2",
		"[WARN] w 3",
		"[ERROR] e 4",
	}, messages)
}

func TestZerolog(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewZerolog(zerolog.New(buf))

	log.Infof("hello %s", "world")
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "hello world")

	log.Errorf("boom %d", 7)
	assert.Contains(t, buf.String(), `"level":"error"`)
}
