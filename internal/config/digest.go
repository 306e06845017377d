package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Digest returns a stable fingerprint of the effective configuration.
// Cached lint results key on it, so any change that could alter
// diagnostics must change the digest.
func (res *Resolved) Digest() string {
	h := sha256.New()
	fmt.Fprintf(h, "max=%d\n", res.MaxViolations)
	for _, pattern := range res.ignoreSrc {
		fmt.Fprintf(h, "ignore=%s\n", pattern)
	}
	for _, rr := range res.Rules() {
		fmt.Fprintf(h, "rule=%s enabled=%t sev=%s\n", rr.ID, rr.Enabled, rr.Severity.ConfigString())
		keys := make([]string, 0, len(rr.Options))
		for k := range rr.Options {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(h, "opt=%s:%v\n", k, rr.Options[k])
		}
	}
	for i, ov := range res.overrides {
		fmt.Fprintf(h, "override=%d files=%v\n", i, ov.patterns)
		ids := make([]string, 0, len(ov.rules))
		for id := range ov.rules {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			rc := ov.rules[id]
			enabled := "keep"
			if rc.Enabled != nil {
				enabled = fmt.Sprintf("%t", *rc.Enabled)
			}
			fmt.Fprintf(h, "ovrule=%s enabled=%s sev=%s opts=%v\n", id, enabled, rc.Severity, rc.Options)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
