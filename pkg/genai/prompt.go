package genai

import (
	"fmt"
	"strings"

	"github.com/memorymindai/memorymind/pkg/graph"
)

const systemPreamble = `You are a personal AI assistant with a long-term memory of the user you are talking to. Use the context below to personalize your answer. If the context does not cover the question, answer helpfully anyway.`

// BuildPrompt concatenates the system preamble, a USER CONTEXT block from
// non-empty profile fields, a RELEVANT MEMORIES block from the retrieved
// nodes, and the literal question. Blocks whose source data is empty are
// omitted entirely.
func BuildPrompt(profile graph.Profile, memories []graph.MemoryNode, question string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n")

	if ctx := userContextBlock(profile); ctx != "" {
		b.WriteString("\nUSER CONTEXT:\n")
		b.WriteString(ctx)
	}

	if len(memories) > 0 {
		b.WriteString("\nRELEVANT MEMORIES:\n")
		for _, node := range memories {
			fmt.Fprintf(&b, "- %s (%s)\n", node.Content, node.NodeType)
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)

	return b.String()
}

func userContextBlock(profile graph.Profile) string {
	var b strings.Builder

	if profile.Name != nil {
		fmt.Fprintf(&b, "Name: %s\n", *profile.Name)
	}
	if len(profile.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	if len(profile.Goals) > 0 {
		b.WriteString("Goals:\n")
		for _, goal := range profile.Goals {
			fmt.Fprintf(&b, "- %s (%.0f%% complete)\n", goal.Goal, goal.Progress*100)
		}
	}

	return b.String()
}
