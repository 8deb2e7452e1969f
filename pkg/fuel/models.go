package fuel

// populateStandardModels loads the 13 original (Anderson 1982) and 40
// standard (Scott & Burgan 2005) fuel models. Loadings are in tons/acre and
// moistures of extinction in percent; record() converts to base units.
func (c *Catalog) populateStandardModels() {
	// Original 13, all static, 8000 Btu/lb dead and live.
	c.record(1, "FM1", "Short grass", 1.0, 12, 0.74, 0, 0, 0, 0, 3500, 1500, 1500, 8000, 8000, false)
	c.record(2, "FM2", "Timber grass and understory", 1.0, 15, 2.00, 1.00, 0.50, 0.50, 0, 3000, 1500, 1500, 8000, 8000, false)
	c.record(3, "FM3", "Tall grass", 2.5, 25, 3.01, 0, 0, 0, 0, 1500, 1500, 1500, 8000, 8000, false)
	c.record(4, "FM4", "Chaparral", 6.0, 20, 5.01, 4.01, 2.00, 0, 5.01, 2000, 1500, 1500, 8000, 8000, false)
	c.record(5, "FM5", "Brush", 2.0, 20, 1.00, 0.50, 0, 0, 2.00, 2000, 1500, 1500, 8000, 8000, false)
	c.record(6, "FM6", "Dormant brush, hardwood slash", 2.5, 25, 1.50, 2.50, 2.00, 0, 0, 1750, 1500, 1500, 8000, 8000, false)
	c.record(7, "FM7", "Southern rough", 2.5, 40, 1.13, 1.87, 1.50, 0, 0.37, 1750, 1500, 1500, 8000, 8000, false)
	c.record(8, "FM8", "Short needle litter", 0.2, 30, 1.50, 1.00, 2.50, 0, 0, 2000, 1500, 1500, 8000, 8000, false)
	c.record(9, "FM9", "Long needle or hardwood litter", 0.2, 25, 2.92, 0.41, 0.15, 0, 0, 2500, 1500, 1500, 8000, 8000, false)
	c.record(10, "FM10", "Timber litter and understory", 1.0, 25, 3.01, 2.00, 5.01, 0, 2.00, 2000, 1500, 1500, 8000, 8000, false)
	c.record(11, "FM11", "Light logging slash", 1.0, 15, 1.50, 4.51, 5.51, 0, 0, 1500, 1500, 1500, 8000, 8000, false)
	c.record(12, "FM12", "Medium logging slash", 2.3, 20, 4.01, 14.03, 16.53, 0, 0, 1500, 1500, 1500, 8000, 8000, false)
	c.record(13, "FM13", "Heavy logging slash", 3.0, 25, 7.01, 23.04, 28.05, 0, 0, 1500, 1500, 1500, 8000, 8000, false)

	// Standard 40: grass (GR), dynamic.
	c.record(101, "GR1", "Short, sparse dry climate grass", 0.4, 15, 0.10, 0, 0, 0.30, 0, 2200, 2000, 1500, 8000, 8000, true)
	c.record(102, "GR2", "Low load dry climate grass", 1.0, 15, 0.10, 0, 0, 1.00, 0, 2000, 1800, 1500, 8000, 8000, true)
	c.record(103, "GR3", "Low load very coarse humid climate grass", 2.0, 30, 0.10, 0.40, 0, 1.50, 0, 1500, 1300, 1500, 8000, 8000, true)
	c.record(104, "GR4", "Moderate load dry climate grass", 2.0, 15, 0.25, 0, 0, 1.90, 0, 2000, 1800, 1500, 8000, 8000, true)
	c.record(105, "GR5", "Low load humid climate grass", 1.5, 40, 0.40, 0, 0, 2.50, 0, 1800, 1600, 1500, 8000, 8000, true)
	c.record(106, "GR6", "Moderate load humid climate grass", 1.5, 40, 0.10, 0, 0, 3.40, 0, 2200, 2000, 1500, 9000, 9000, true)
	c.record(107, "GR7", "High load dry climate grass", 3.0, 15, 1.00, 0, 0, 5.40, 0, 2000, 1800, 1500, 8000, 8000, true)
	c.record(108, "GR8", "High load very coarse humid climate grass", 4.0, 30, 0.50, 1.00, 0, 7.30, 0, 1500, 1300, 1500, 8000, 8000, true)
	c.record(109, "GR9", "Very high load humid climate grass", 5.0, 40, 1.00, 1.00, 0, 9.00, 0, 1800, 1600, 1500, 8000, 8000, true)

	// Grass-shrub (GS), dynamic.
	c.record(121, "GS1", "Low load dry climate grass-shrub", 0.9, 15, 0.20, 0, 0, 0.50, 0.65, 2000, 1800, 1800, 8000, 8000, true)
	c.record(122, "GS2", "Moderate load dry climate grass-shrub", 1.5, 15, 0.50, 0.50, 0, 0.60, 1.00, 2000, 1800, 1800, 8000, 8000, true)
	c.record(123, "GS3", "Moderate load humid climate grass-shrub", 1.8, 40, 0.30, 0.25, 0, 1.45, 1.25, 1800, 1600, 1600, 8000, 8000, true)
	c.record(124, "GS4", "High load humid climate grass-shrub", 2.1, 40, 1.90, 0.30, 0.10, 3.40, 7.10, 1800, 1600, 1600, 8000, 8000, true)

	// Shrub (SH).
	c.record(141, "SH1", "Low load dry climate shrub", 1.0, 15, 0.25, 0.25, 0, 0.15, 1.30, 2000, 1800, 1600, 8000, 8000, true)
	c.record(142, "SH2", "Moderate load dry climate shrub", 1.0, 15, 1.35, 2.40, 0.75, 0, 3.85, 2000, 1800, 1600, 8000, 8000, false)
	c.record(143, "SH3", "Moderate load humid climate shrub", 2.4, 40, 0.45, 3.00, 0, 0, 6.20, 1600, 1800, 1400, 8000, 8000, false)
	c.record(144, "SH4", "Low load humid climate timber-shrub", 3.0, 30, 0.85, 1.15, 0.20, 0, 2.55, 2000, 1800, 1600, 8000, 8000, false)
	c.record(145, "SH5", "High load dry climate shrub", 6.0, 15, 3.60, 2.10, 0, 0, 2.90, 750, 1800, 1600, 8000, 8000, false)
	c.record(146, "SH6", "Low load humid climate shrub", 2.0, 30, 2.90, 1.45, 0, 0, 1.40, 750, 1800, 1600, 8000, 8000, false)
	c.record(147, "SH7", "Very high load dry climate shrub", 6.0, 15, 3.50, 5.30, 2.20, 0, 3.40, 750, 1800, 1600, 8000, 8000, false)
	c.record(148, "SH8", "High load humid climate shrub", 3.0, 40, 2.05, 3.40, 0.85, 0, 4.35, 750, 1800, 1600, 8000, 8000, false)
	c.record(149, "SH9", "Very high load humid climate shrub", 4.4, 40, 4.50, 2.45, 0, 1.55, 7.00, 750, 1800, 1500, 8000, 8000, true)

	// Timber-understory (TU).
	c.record(161, "TU1", "Light load dry climate timber-grass-shrub", 0.6, 20, 0.20, 0.90, 1.50, 0.20, 0.90, 2000, 1800, 1600, 8000, 8000, true)
	c.record(162, "TU2", "Moderate load humid climate timber-shrub", 1.0, 30, 0.95, 1.80, 1.25, 0, 0.20, 2000, 1800, 1600, 8000, 8000, false)
	c.record(163, "TU3", "Moderate load humid climate timber-grass-shrub", 1.3, 30, 1.10, 0.15, 0.25, 0.65, 1.10, 1800, 1600, 1400, 8000, 8000, true)
	c.record(164, "TU4", "Dwarf conifer with understory", 0.5, 12, 4.50, 0, 0, 0, 2.00, 2300, 1800, 2000, 8000, 8000, false)
	c.record(165, "TU5", "Very high load dry climate timber-shrub", 1.0, 25, 4.00, 4.00, 3.00, 0, 3.00, 1500, 1800, 750, 8000, 8000, false)

	// Timber litter (TL).
	c.record(181, "TL1", "Low load compact conifer litter", 0.2, 30, 1.00, 2.20, 3.60, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(182, "TL2", "Low load broadleaf litter", 0.2, 25, 1.40, 2.30, 2.20, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(183, "TL3", "Moderate load conifer litter", 0.3, 20, 0.50, 2.20, 2.80, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(184, "TL4", "Small downed logs", 0.4, 25, 0.50, 1.50, 4.20, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(185, "TL5", "High load conifer litter", 0.6, 25, 1.15, 2.50, 4.40, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(186, "TL6", "Moderate load broadleaf litter", 0.3, 25, 2.40, 1.20, 1.20, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(187, "TL7", "Large downed logs", 0.4, 25, 0.30, 1.40, 8.10, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(188, "TL8", "Long-needle litter", 0.3, 35, 5.80, 1.40, 1.10, 0, 0, 1800, 1800, 1600, 8000, 8000, false)
	c.record(189, "TL9", "Very high load broadleaf litter", 0.6, 35, 6.65, 3.30, 4.15, 0, 0, 1800, 1800, 1600, 8000, 8000, false)

	// Slash-blowdown (SB).
	c.record(201, "SB1", "Low load activity fuel", 1.0, 25, 1.50, 3.00, 11.00, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(202, "SB2", "Moderate load activity fuel or low load blowdown", 1.0, 25, 4.50, 4.25, 4.00, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(203, "SB3", "High load activity fuel or moderate load blowdown", 1.2, 25, 5.50, 2.75, 3.00, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
	c.record(204, "SB4", "High load blowdown", 2.7, 25, 5.25, 3.50, 5.25, 0, 0, 2000, 1800, 1600, 8000, 8000, false)
}
