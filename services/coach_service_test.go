package services

import (
	"testing"

	"fitai/models"

	"github.com/stretchr/testify/require"
)

func TestParseMemoryFacts(t *testing.T) {
	facts := parseMemoryFacts(`[{"key": "goal", "value": "build muscle"}, {"key": "injury", "value": "left knee"}]`)
	require.Len(t, facts, 2)
	require.Equal(t, "goal", facts[0].Key)
	require.Equal(t, "build muscle", facts[0].Value)
}

func TestParseMemoryFactsStripsMarkdownFence(t *testing.T) {
	reply := "```json\n[{\"key\": \"schedule\", \"value\": \"trains at 6am\"}]\n```"
	facts := parseMemoryFacts(reply)
	require.Len(t, facts, 1)
	require.Equal(t, "schedule", facts[0].Key)
}

func TestParseMemoryFactsToleratesNonJSONReply(t *testing.T) {
	require.Empty(t, parseMemoryFacts("The message contains no relevant information."))
	require.Empty(t, parseMemoryFacts(""))
}

func TestParseMemoryFactsDropsIncompletePairs(t *testing.T) {
	facts := parseMemoryFacts(`[{"key": "goal", "value": "lose weight"}, {"key": "", "value": "x"}, {"key": "y"}]`)
	require.Len(t, facts, 1)
	require.Equal(t, "goal", facts[0].Key)
}

func TestMemoryContext(t *testing.T) {
	require.Equal(t, "The user has no stored information yet.", memoryContext(nil))

	out := memoryContext([]models.UserMemory{
		{Key: "goal", Value: "build muscle"},
		{Key: "injury", Value: "left knee"},
	})
	require.Contains(t, out, "- goal: build muscle")
	require.Contains(t, out, "- injury: left knee")
}
