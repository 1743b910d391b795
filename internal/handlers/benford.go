package handlers

import (
	"math/rand"

	"fraudlens/internal/services/benford"
	"fraudlens/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// maxBenfordSampleSize bounds the per-request draw count so a single query
// parameter cannot pin a CPU.
const maxBenfordSampleSize = 100000

type BenfordHandler struct {
	sampler *benford.Sampler
	newRand func() *rand.Rand
}

func NewBenfordHandler(sampler *benford.Sampler, newRand func() *rand.Rand) *BenfordHandler {
	if newRand == nil {
		newRand = benford.NewRand
	}
	return &BenfordHandler{
		sampler: sampler,
		newRand: newRand,
	}
}

// Sample draws a synthetic first-digit sample. The size query parameter
// overrides the configured default and is clamped to [1, 100000].
func (h *BenfordHandler) Sample(c *fiber.Ctx) error {
	size := c.QueryInt("size", h.sampler.SampleSize())
	if size < 1 {
		size = 1
	}
	if size > maxBenfordSampleSize {
		size = maxBenfordSampleSize
	}

	sample := h.sampler.SampleN(h.newRand(), size)
	return response.Success(c, "Benford sample generated successfully", sample)
}
