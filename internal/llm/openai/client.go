package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahadianp/pesanin/internal/common"
	"github.com/rahadianp/pesanin/internal/llm"
)

// ExtractOrders implements llm.OrderExtractor using text-only
// chat/completions with a JSON-object response constraint.
func (c *Client) ExtractOrders(ctx context.Context, req llm.ExtractRequest) ([]llm.OrderDraft, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.RawText),
		"rule_items", req.RuleItemCount,
		"potential_items", req.PotentialItemCount,
	)

	schema := llm.BuildOrdersJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req)},
			{"role": "user", "content": buildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices", "req_id", rid, "raw", string(raw))
		return nil, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		if !c.cfg.Lenient {
			c.log.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", err)
			return nil, content, common.NewAppError("LLM_SCHEMA", "reply failed schema validation", err)
		}
		cleaned, dropped, sErr := llm.SanitizeOrders(content)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			return nil, content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", vErr)
			return nil, content, common.NewAppError("LLM_SCHEMA", "reply failed schema validation", vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied", "req_id", rid, "dropped", dropped)
		content = cleaned
	}

	var out llm.ExtractResponse
	if err := json.Unmarshal(content, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed", "req_id", rid, "error", err)
		return nil, content, fmt.Errorf("unmarshal orders: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"orders", len(out.Orders),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Orders, content, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("openai response body close error", "error", cerr)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}

func buildSystemPrompt(req llm.ExtractRequest) string {
	parts := []string{
		"You extract customer orders from pasted Indonesian chat text. Return ONLY JSON that matches the JSON Schema provided.",
		"The text may contain several distinct orders; return one entry per order.",
		"Prices are integer rupiah amounts; expand shorthand like '30k' or '21.000' to 30000 and 21000.",
		"Phone numbers are digits only; keep the address as free text exactly as written.",
		"Never output null. If a field is not present, omit it.",
	}
	if req.PotentialItemCount > req.RuleItemCount {
		parts = append(parts, fmt.Sprintf(
			"A rule-based pass found %d item(s) but the text looks like it holds about %d; be thorough about item lines.",
			req.RuleItemCount, req.PotentialItemCount))
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(req llm.ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Pasted order text (first ~3k chars):\n")
	if len(req.RawText) > 3000 {
		b.WriteString(req.RawText[:3000])
	} else {
		b.WriteString(req.RawText)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
