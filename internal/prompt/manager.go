// Package prompt manages the named prompt templates used by the generation
// workflows. Every template declares the exact set of parameters it needs;
// rendering with a missing or unexpected parameter fails loudly instead of
// leaving a placeholder token in the output sent to a provider.
package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// Template is a named prompt body with its required parameter set.
type Template struct {
	text     string
	required map[string]struct{}
}

// Manager holds the registered templates.
type Manager struct {
	templates map[string]Template
}

// NewManager returns a manager with all workflow templates registered.
func NewManager() *Manager {
	m := &Manager{templates: make(map[string]Template)}

	m.register(NameRandomContext, randomContextTemplate, "CEFR_Level")
	m.register(NameContextPrompt, contextPromptTemplate, "CEFR_Level", "Situation")
	m.register(NameChatPrompt, chatPromptTemplate, "CEFR_Level", "Context")
	m.register(NameExampleDialogue, exampleDialogueTemplate, "CEFR_Level", "Context")
	m.register(NameReview, reviewTemplate, "CEFR_Level", "context", "conversation")
	m.register(NameWordAnalysis, wordAnalysisTemplate, "SwedishWord", "WordClass", "TargetLanguage")
	m.register(NameTranslation, translationTemplate, "Style", "Text", "TargetLanguage")

	return m
}

func (m *Manager) register(name, text string, params ...string) {
	required := make(map[string]struct{}, len(params))
	for _, p := range params {
		required[p] = struct{}{}
	}
	m.templates[name] = Template{text: text, required: required}
}

// Render substitutes vars into the named template. The variable set must
// match the template's required parameters exactly.
func (m *Manager) Render(name string, vars map[string]string) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("prompt %q not found", name)
	}

	for key := range tmpl.required {
		if _, present := vars[key]; !present {
			return "", fmt.Errorf("prompt %q: missing required parameter %q", name, key)
		}
	}
	for key := range vars {
		if _, expected := tmpl.required[key]; !expected {
			return "", fmt.Errorf("prompt %q: unexpected parameter %q", name, key)
		}
	}

	rendered := tmpl.text
	for key, value := range vars {
		rendered = strings.ReplaceAll(rendered, "{"+key+"}", value)
	}
	return rendered, nil
}

// Names returns the registered template names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.templates))
	for name := range m.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
