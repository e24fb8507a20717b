package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/xiaot623/gogo/agent/internal/adapter/llm"
)

// PromptTemplate renders a prompt with {name} placeholders.
type PromptTemplate struct {
	text string
	vars []string
	tpl  *fasttemplate.Template
}

// NewPromptTemplate parses text and records the variables Format requires.
func NewPromptTemplate(text string, vars ...string) (*PromptTemplate, error) {
	tpl, err := fasttemplate.NewTemplate(text, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	for _, v := range vars {
		if !strings.Contains(text, "{"+v+"}") {
			return nil, fmt.Errorf("prompt template has no {%s} placeholder", v)
		}
	}
	return &PromptTemplate{text: text, vars: vars, tpl: tpl}, nil
}

// Format substitutes values into the template.
func (p *PromptTemplate) Format(values map[string]string) (string, error) {
	args := make(map[string]interface{}, len(values))
	for _, v := range p.vars {
		val, ok := values[v]
		if !ok {
			return "", fmt.Errorf("missing prompt variable %q", v)
		}
		args[v] = val
	}
	return p.tpl.ExecuteString(args), nil
}

// OutputParser turns raw model output into the chain result.
type OutputParser func(string) string

// StrOutputParser passes the model text through unchanged.
func StrOutputParser(s string) string { return s }

// Chain is a template -> model -> parser pipeline.
type Chain struct {
	Prompt *PromptTemplate
	LLM    llm.ChatClient
	Parser OutputParser
}

// Invoke runs the pipeline once.
func (c *Chain) Invoke(ctx context.Context, values map[string]string) (string, error) {
	prompt, err := c.Prompt.Format(values)
	if err != nil {
		return "", err
	}

	out, err := c.LLM.Invoke(ctx, prompt)
	if err != nil {
		return "", err
	}

	if c.Parser == nil {
		return out, nil
	}
	return c.Parser(out), nil
}
