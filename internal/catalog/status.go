package catalog

import (
	"time"

	"llmboard/pkg/types"
)

// Status builds a detailed status response for /status.
func (c *Catalog) Status() types.StatusResponse {
	c.mu.Lock()
	lastErr := c.lastErr
	c.mu.Unlock()

	now := c.now()
	resp := types.StatusResponse{
		State:          string(StateLoading),
		Source:         c.Source(),
		LastError:      lastErr,
		UptimeSeconds:  int64(now.Sub(c.start) / time.Second),
		ServerTimeUnix: now.Unix(),
	}
	s := c.snap.Load()
	if s == nil {
		if lastErr != "" {
			resp.State = string(StateError)
		}
		return resp
	}
	resp.State = string(StateReady)
	resp.Records = len(s.models)
	resp.OperationalRanked, resp.SafetyRanked = s.counts()
	resp.Generation = s.gen
	resp.LoadedAtUnix = s.loadedAt.Unix()
	return resp
}
