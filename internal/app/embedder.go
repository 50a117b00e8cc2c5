package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/philippgille/chromem-go"
)

const (
	defaultEmbedDims      = 256
	defaultEmbedCacheSize = 1024
	// biasWeight держит вектор ненулевым для текста без слов
	biasWeight = 1e-3
)

// Embedder строит локальные embedding'и методом hashed bag-of-words.
// Сети не требует; годится для предпросмотра поиска по чанкам.
type Embedder struct {
	dims  int
	cache *lru.Cache[string, []float32]
}

// NewEmbedder создаёт embedder с LRU-кэшем векторов по хэшу текста.
// Неположительные dims и cacheSize заменяются значениями по умолчанию.
func NewEmbedder(dims, cacheSize int) (*Embedder, error) {
	if dims <= 0 {
		dims = defaultEmbedDims
	}
	if cacheSize <= 0 {
		cacheSize = defaultEmbedCacheSize
	}
	cache, err := lru.New[string, []float32](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding cache: %w", err)
	}
	return &Embedder{dims: dims, cache: cache}, nil
}

// Func возвращает embedder в виде chromem.EmbeddingFunc
func (e *Embedder) Func() chromem.EmbeddingFunc {
	return e.Embed
}

// Embed возвращает нормализованный вектор текста
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(text))
	key := hex.EncodeToString(sum[:])

	if v, ok := e.cache.Get(key); ok {
		return cloneVector(v), nil
	}

	v := e.vectorize(text)
	e.cache.Add(key, v)
	return cloneVector(v), nil
}

// CacheLen возвращает число векторов в кэше
func (e *Embedder) CacheLen() int {
	return e.cache.Len()
}

func (e *Embedder) vectorize(text string) []float32 {
	// последний элемент - bias
	v := make([]float32, e.dims+1)
	v[e.dims] = biasWeight

	for _, term := range terms(text) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(term))
		x := h.Sum64()

		idx := int(x % uint64(e.dims))
		if x&(1<<63) != 0 {
			v[idx]--
		} else {
			v[idx]++
		}
	}

	normalize(v)
	return v
}

// terms выделяет слова в нижнем регистре
func terms(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}

func cloneVector(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
