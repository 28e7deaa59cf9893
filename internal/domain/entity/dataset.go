package entity

// Sample один образец датасета: изображение и граф.
type Sample struct {
	Name      string `json:"name"`
	ImagePath string `json:"image"`
	GraphPath string `json:"graph"`
}

// SampleReport метрики одного образца.
type SampleReport struct {
	Sample  Sample  `json:"sample"`
	Metrics Metrics `json:"metrics"`
}

// BatchReport итог оценки всего датасета.
type BatchReport struct {
	RunID   string         `json:"run_id"`
	Samples []SampleReport `json:"samples"`
	Total   Metrics        `json:"total"` // TP/FP/FN суммируются по образцам
}
