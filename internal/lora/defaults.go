package lora

// Default returns the built-in catalog. Deployments can replace it with a
// YAML file via Load; the shapes are identical.
func Default() *Catalog {
	return &Catalog{
		MaxTotal: 3,
		Limits: map[Category]int{
			CategoryAdapter: 1,
			CategoryUtility: 2,
			CategoryRealism: 1,
			CategoryStyle:   1,
			CategorySlider:  1,
			CategoryMorph:   1,
			CategoryNSFW:    1,
		},
		Fallbacks: []Fallback{
			{Name: "add_detail", Weight: 0.20},
			{Name: "epiRealismHelper", Weight: 0.30},
			{Name: "detailed_notrigger", Weight: 0.25},
		},
		Entries: []Entry{
			{
				Name:     "ip-adapter-faceid-plusv2_sdxl_lora",
				Weight:   0.8,
				Category: CategoryAdapter,
				Keywords: []string{"reference face", "same person", "face match", "face reference", "identity match", "match face", "keep identity"},
				SDXLOk:   true,
				Notes:    "Align face to a reference image (IP-Adapter).",
				Trigger:  "face id adapter",
			},
			{
				Name:     "add_detail",
				Weight:   0.4,
				Category: CategoryUtility,
				Keywords: []string{"detail", "details", "high detail", "sharp", "sharpen", "clarity", "texture"},
				SDXLOk:   false,
				Notes:    "Non-XL variant.",
				Trigger:  "add detail",
			},
			{
				Name:     "Hand v2",
				Weight:   0.7,
				Category: CategoryUtility,
				Keywords: []string{"hand", "hands", "fingers", "finger", "palm", "palms", "grip", "grasp", "hand pose", "hand gesture", "gestures"},
				SDXLOk:   true,
				Notes:    "Improves hands/fingers.",
				Trigger:  "hands detail",
			},
			{
				Name:     "detailed_notrigger",
				Weight:   0.45,
				Category: CategoryUtility,
				Keywords: []string{"detail", "details", "micro detail", "texture", "sharp", "clarity", "crisp"},
				SDXLOk:   true,
				Trigger:  "detailed helper",
			},
			{
				Name:     "epiRealismHelper",
				Weight:   0.4,
				Category: CategoryUtility,
				Keywords: []string{"realism helper", "skin detail", "skin texture", "natural skin", "realistic", "pores", "skin pores"},
				SDXLOk:   true,
				Trigger:  "realism helper",
			},
			{
				Name:     "KrekkovLycoXLV2",
				Weight:   0.5,
				Category: CategoryRealism,
				Keywords: []string{"xl", "detail", "realism", "texture", "sharp", "crisp", "clarity"},
				SDXLOk:   true,
				Trigger:  "krekkov xl",
			},
			{
				Name:     "SummertimeSagaXL_Pony",
				Weight:   0.45,
				Category: CategoryRealism,
				Keywords: []string{"toon realism", "comic realism", "summertime saga", "pony", "mlp", "cel shading realistic"},
				SDXLOk:   true,
				Notes:    "Toon-realism look.",
				Trigger:  "summertime saga xl",
			},
			{
				Name:     "Abstract Painting - Style [LoRA] - Pony V6",
				Weight:   0.6,
				Category: CategoryStyle,
				Keywords: []string{"painting", "painterly", "abstract", "brush stroke", "oil paint", "oil painting", "canvas texture", "impasto", "pony"},
				SDXLOk:   true,
				Trigger:  "abstract painting style",
			},
			{
				Name:     "Oscar_ILL",
				Weight:   0.5,
				Category: CategoryStyle,
				Keywords: []string{"illustration", "illustrative", "cartoon", "flat shading", "line art", "comic", "posterized"},
				SDXLOk:   true,
				Trigger:  "illustration style",
			},
			{
				Name:     "g0th1c2XLP",
				Weight:   0.6,
				Category: CategoryStyle,
				Keywords: []string{"goth", "gothic", "dark", "moody", "black makeup", "punk", "alt", "alternative"},
				SDXLOk:   true,
				Trigger:  "gothic style",
			},
			{
				Name:     "MythAnim3Style",
				Weight:   0.55,
				Category: CategoryStyle,
				Keywords: []string{"anime", "myth", "mythical", "fantasy anime", "stylized", "cel shading"},
				SDXLOk:   true,
				Trigger:  "myth anime style",
			},
			{
				Name:     "Expressive_H-000001",
				Weight:   0.2,
				Category: CategoryStyle,
				Keywords: []string{"expressive", "emotional", "facial expression", "intense gaze", "expressive face", "expressive eyes"},
				SDXLOk:   true,
				Notes:    "Enhances facial expressiveness; keep low weight.",
				Trigger:  "expressive face",
			},
			{
				Name:     "perfection style v2d",
				Weight:   0.5,
				Category: CategoryStyle,
				Keywords: []string{"perfect", "beauty perfection", "studio beauty", "beauty retouch", "polished look", "airbrushed"},
				SDXLOk:   true,
				Trigger:  "perfection style",
			},
			{
				Name:     "FluxMythP0rtr4itStyle",
				Weight:   0.55,
				Category: CategoryStyle,
				Keywords: []string{"portrait style", "myth", "oil painting", "classical portrait", "fine art"},
				SDXLOk:   true,
				Trigger:  "myth portrait style",
			},
			{
				Name:     "Pony Realism Slider",
				Weight:   0.5,
				Category: CategorySlider,
				Keywords: []string{"pony", "mlp", "realism"},
				SDXLOk:   true,
				Trigger:  "pony realism slider",
			},
			{
				Name:     "StS_PonyXL_Detail_Slider_v1.4_iteration_3",
				Weight:   0.5,
				Category: CategorySlider,
				Keywords: []string{"pony", "xl detail", "pony detail", "texture", "detail slider"},
				SDXLOk:   true,
				Trigger:  "pony xl detail slider",
			},
		},
	}
}
