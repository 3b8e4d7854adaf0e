// Package log writes one JSON object per line through the standard logger.
// Pass a nil *fiber.Ctx outside of request handling.
package log

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

type entry struct {
	TS        string         `json:"ts"`
	Level     string         `json:"level"`
	ReqID     string         `json:"req_id,omitempty"`
	IP        string         `json:"ip,omitempty"`
	Method    string         `json:"method,omitempty"`
	Path      string         `json:"path,omitempty"`
	Action    string         `json:"action,omitempty"`
	Status    int            `json:"status,omitempty"`
	LatencyMs int64          `json:"latency_ms,omitempty"`
	Err       string         `json:"err,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.IP()
		e.Method = c.Method()
		e.Path = c.Path()
		e.Status = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.ReqID = rid
		}
		if start, ok := c.Locals("start").(time.Time); ok {
			e.LatencyMs = time.Since(start).Milliseconds()
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write("warn", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}

// MirrorToFile copies log output to path in append mode. Closing the
// result restores the previous output and closes the file.
func MirrorToFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	prev := log.Writer()
	log.SetOutput(io.MultiWriter(prev, f))
	return &mirror{f: f, prev: prev}, nil
}

type mirror struct {
	f    *os.File
	prev io.Writer
}

func (m *mirror) Close() error {
	log.SetOutput(m.prev)
	return m.f.Close()
}
