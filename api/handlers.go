package api

import (
	"context"
	"strings"
	"time"

	"github.com/CristiGvl/picoCPUProbe/internal/report"
	"github.com/CristiGvl/picoCPUProbe/internal/snapshot"
	"github.com/gofiber/fiber/v2"
)

// capture takes one snapshot with a bounded deadline
func (s *Server) capture() (*snapshot.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.prober.Capture(ctx)
}

// Full snapshot endpoint
func (s *Server) getSnapshot(c *fiber.Ctx) error {
	snap, err := s.capture()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(snap)
}

// Topology endpoint
func (s *Server) getTopology(c *fiber.Ctx) error {
	snap, err := s.capture()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"logical_core_count":  snap.LogicalCores,
		"physical_core_count": len(snap.PhysicalCores),
		"physical_cores":      snap.PhysicalCores,
	})
}

// Cache endpoint
func (s *Server) getCaches(c *fiber.Ctx) error {
	snap, err := s.capture()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"l1_per_logical": snap.L1PerLogical,
		"l2_per_logical": snap.L2PerLogical,
		"l3_size_kib":    snap.L3SizeKiB,
	})
}

// Feature flags endpoint
func (s *Server) getFeatures(c *fiber.Ctx) error {
	snap, err := s.capture()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"brand_name": snap.BrandName,
		"features":   snap.Features,
		"enabled":    snap.Features.Names(),
	})
}

// Frequency endpoint
func (s *Server) getFrequency(c *fiber.Ctx) error {
	snap, err := s.capture()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"frequency_mhz_per_logical": snap.FrequencyMHz,
	})
}

// Text report endpoint
func (s *Server) getReport(c *fiber.Ctx) error {
	snap, err := s.capture()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	var sb strings.Builder
	if err := report.Render(&sb, snap); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(sb.String())
}
