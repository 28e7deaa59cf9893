package entity

// GroundTruthPad эталонная площадка из графа разметки.
type GroundTruthPad struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Match пара (индекс ground truth, индекс детекции).
type Match struct {
	GroundTruth int `json:"gt"`
	Detection   int `json:"det"`
}

// MatchResult итог жадного сопоставления.
type MatchResult struct {
	Matches        []Match // пары один-к-одному
	FalsePositives []int   // индексы детекций без пары
	FalseNegatives []int   // индексы ground truth без пары
}

// Metrics метрики качества детекции.
type Metrics struct {
	GTCount        int     `json:"gt_count"`
	DetectionCount int     `json:"detection_count"`
	TP             int     `json:"tp"`
	FP             int     `json:"fp"`
	FN             int     `json:"fn"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// EvaluationReport хранит итог оценки одного изображения.
type EvaluationReport struct {
	ImagePath    string           // путь к изображению, пусто для данных из памяти
	ImageWidth   int              // ширина изображения
	ImageHeight  int              // высота изображения
	Detections   []Detection      // найденные площадки
	GroundTruths []GroundTruthPad // эталонные площадки
	Match        MatchResult      // сопоставление
	Metrics      Metrics          // метрики
}
