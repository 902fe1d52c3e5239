package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/timeline-visualizer/internal/domain"
)

const segmentsField = "semanticSegments"

var (
	// ErrInvalidFormat - в документе нет массива semanticSegments
	ErrInvalidFormat = errors.New("invalid timeline format: semanticSegments array is missing")
	// ErrMalformedJSON - документ не является корректным JSON
	ErrMalformedJSON = errors.New("malformed JSON document")
	// ErrUnreadable - документ не удалось прочитать
	ErrUnreadable = errors.New("timeline document is unreadable")
	// ErrDocumentTooLarge - документ превышает допустимый размер
	ErrDocumentTooLarge = errors.New("timeline document is too large")
)

// BuildStats - статистика построения набора данных
type BuildStats struct {
	Segments          int                `json:"segments"`
	EmptySegments     int                `json:"empty_segments"`
	PathPointsSeen    int                `json:"path_points_seen"`
	PathPointsKept    int                `json:"path_points_kept"`
	PathPointsDropped int                `json:"path_points_dropped"`
	CappedPoints      int                `json:"capped_points"`
	InvertedSpans     int                `json:"inverted_spans"`
	Skips             map[SkipReason]int `json:"skips"`
}

func newBuildStats() *BuildStats {
	return &BuildStats{Skips: make(map[SkipReason]int)}
}

// Builder строит Dataset из документа истории местоположений
type Builder struct {
	normalizer *Normalizer
	sampling   SamplingConfig
}

// NewBuilder создает Builder
func NewBuilder(sampling SamplingConfig, loc *time.Location) *Builder {
	sampling = sampling.withDefaults()
	return &Builder{
		normalizer: NewNormalizer(sampling, loc),
		sampling:   sampling,
	}
}

// accumulator собирает вклады сегментов в порядке входного массива
type accumulator struct {
	dataset *domain.Dataset
	stats   *BuildStats
}

func newAccumulator() *accumulator {
	return &accumulator{
		dataset: domain.NewDataset(),
		stats:   newBuildStats(),
	}
}

func (a *accumulator) add(res SegmentResult) {
	a.stats.Segments++

	var start, end *time.Time
	if t, ok := res.Start.Get(); ok {
		start = &t
	}
	if t, ok := res.End.Get(); ok {
		end = &t
	}
	a.dataset.DateRange.Widen(start, end)

	a.stats.PathPointsSeen += res.PathPointsSeen
	a.stats.PathPointsDropped += res.PathPointsDropped
	a.stats.PathPointsKept += len(res.TrackPoints)
	a.dataset.TrackPoints = append(a.dataset.TrackPoints, res.TrackPoints...)

	if v, ok := res.Visit.Get(); ok {
		a.dataset.Visits = append(a.dataset.Visits, v)
		if v.Inverted() {
			a.stats.InvertedSpans++
		}
	}
	if act, ok := res.Activity.Get(); ok {
		a.dataset.Activities = append(a.dataset.Activities, act)
		if act.Inverted() {
			a.stats.InvertedSpans++
		}
	}

	for _, reason := range res.Skips {
		a.stats.Skips[reason]++
	}
	if !res.Contributed() {
		a.stats.EmptySegments++
	}
}

// Build читает документ потоково и нормализует сегменты по одному.
// Единственное структурное требование - массив semanticSegments в корневом объекте;
// без него возвращается пустой Dataset и ErrInvalidFormat.
// Ошибки отдельных сегментов не прерывают обработку.
func (b *Builder) Build(r io.Reader) (*domain.Dataset, *BuildStats, error) {
	acc, err := b.decode(json.NewDecoder(r))
	if err != nil {
		return domain.NewDataset(), newBuildStats(), err
	}

	before := len(acc.dataset.TrackPoints)
	acc.dataset.TrackPoints = capTrackPoints(acc.dataset.TrackPoints, b.sampling.MaxTrackPoints)
	acc.stats.CappedPoints = before - len(acc.dataset.TrackPoints)

	return acc.dataset, acc.stats, nil
}

func (b *Builder) decode(dec *json.Decoder) (*accumulator, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, classifyDecodeError(err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		// корень не объект: дочитываем документ, чтобы битый JSON
		// отличался от структурной ошибки
		if err := skipOpened(dec, tok); err != nil {
			return nil, classifyDecodeError(err)
		}
		if err := expectEOF(dec); err != nil {
			return nil, err
		}
		return nil, ErrInvalidFormat
	}

	var acc *accumulator
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, classifyDecodeError(err)
		}
		key, _ := keyTok.(string)

		if key != segmentsField {
			var discard json.RawMessage
			if err := dec.Decode(&discard); err != nil {
				return nil, classifyDecodeError(err)
			}
			continue
		}

		// при повторе ключа побеждает последнее значение, как в JSON.parse
		acc, err = b.decodeSegments(dec)
		if err != nil {
			return nil, err
		}
	}

	// закрывающая '}'
	if _, err := dec.Token(); err != nil {
		return nil, classifyDecodeError(err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	if acc == nil {
		return nil, ErrInvalidFormat
	}
	return acc, nil
}

// decodeSegments разбирает значение semanticSegments. Возвращает nil-аккумулятор,
// если значение не массив.
func (b *Builder) decodeSegments(dec *json.Decoder) (*accumulator, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, classifyDecodeError(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		if err := skipOpened(dec, tok); err != nil {
			return nil, classifyDecodeError(err)
		}
		return nil, nil
	}

	acc := newAccumulator()
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, classifyDecodeError(err)
		}
		acc.add(b.normalizer.Normalize(raw))
	}

	// закрывающая ']'
	if _, err := dec.Token(); err != nil {
		return nil, classifyDecodeError(err)
	}
	return acc, nil
}

// skipOpened дочитывает значение, первый токен которого уже прочитан
func skipOpened(dec *json.Decoder, first json.Token) error {
	delim, ok := first.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}

	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// expectEOF проверяет, что после корневого значения ничего нет
func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return classifyDecodeError(err)
	}
	return fmt.Errorf("%w: unexpected data after top-level value: %v", ErrMalformedJSON, tok)
}

func classifyDecodeError(err error) error {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, ErrDocumentTooLarge):
		return err
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: %v (offset %d)", ErrMalformedJSON, syntaxErr, syntaxErr.Offset)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: unexpected end of document", ErrMalformedJSON)
	default:
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
}

// limitedReader возвращает ErrDocumentTooLarge, если прочитано больше лимита
type limitedReader struct {
	r         io.Reader
	remaining int64
}

// LimitReader ограничивает размер читаемого документа
func LimitReader(r io.Reader, limit int64) io.Reader {
	if limit <= 0 {
		return r
	}
	return &limitedReader{r: r, remaining: limit}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrDocumentTooLarge
	}
	// читаем на байт больше лимита, чтобы отличить документ ровно по лимиту от превышения
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrDocumentTooLarge
	}
	return n, err
}
