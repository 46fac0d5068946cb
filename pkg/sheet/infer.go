package sheet

// AxisConfig is the persisted column choice of a chart.
type AxisConfig struct {
	XAxisKey string   `json:"xAxisKey"`
	DataKeys []string `json:"dataKeys"`
}

// ColumnInferrer decides which column is the category axis and which
// columns carry values.
type ColumnInferrer interface {
	Infer(t *Table, cfg AxisConfig) (xKey string, yKeys []string)
}

// FirstTextInferrer samples the first row: the first textual column is x,
// every other numeric column is y. Explicit config wins where it names real
// columns.
type FirstTextInferrer struct{}

func (FirstTextInferrer) Infer(t *Table, cfg AxisConfig) (string, []string) {
	if t == nil || len(t.Headers) == 0 {
		return "", nil
	}

	var sample Row
	if len(t.Rows) > 0 {
		sample = t.Rows[0]
	}

	valid := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		valid[h] = true
	}

	xKey := cfg.XAxisKey
	if !valid[xKey] {
		xKey = t.Headers[0]
		for _, h := range t.Headers {
			if _, ok := sample[h].(string); ok {
				xKey = h
				break
			}
		}
	}

	var yKeys []string
	for _, k := range cfg.DataKeys {
		if valid[k] {
			yKeys = append(yKeys, k)
		}
	}
	if len(yKeys) > 0 {
		return xKey, yKeys
	}

	for _, h := range t.Headers {
		if h == xKey {
			continue
		}
		if _, ok := sample[h].(float64); ok {
			yKeys = append(yKeys, h)
		}
	}
	if len(yKeys) > 0 {
		return xKey, yKeys
	}

	if len(t.Headers) > 1 {
		return xKey, []string{t.Headers[1]}
	}
	return xKey, []string{t.Headers[0]}
}
