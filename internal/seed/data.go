package seed

// productRow is one authored catalog entry. Order is display order.
type productRow struct {
	name         string
	subtitle     string
	priceCents   int64
	volume       string
	dosage       string
	category     string
	image        string
	description  string
	coaAvailable bool
	inStock      bool
	tags         []string
}

type guideRow struct {
	title    string
	category string
	readTime string
	image    string
}

var products = []productRow{
	{
		name:         "BPC-157",
		subtitle:     "Body Protection Compound",
		priceCents:   5500,
		volume:       "5mL",
		dosage:       "10mg",
		category:     "Recovery",
		image:        "https://images.unsplash.com/photo-1624638765416-faed240b9049?q=80&w=1000&auto=format&fit=crop",
		description:  "Synthetic pentadecapeptide composed of 15 amino acids. Studied for its potential in tendon, ligament and gut-lining regeneration research. Formulated for high stability.",
		coaAvailable: true,
		inStock:      true,
		tags:         []string{"Recovery", "Gut Health", "Joints"},
	},
	{
		name:         "TB-500",
		subtitle:     "Thymosin Beta-4 Analog",
		priceCents:   6500,
		volume:       "2mL",
		dosage:       "5mg",
		category:     "Recovery",
		image:        "https://images.unsplash.com/photo-1585435557343-3b092031a831?q=80&w=1000&auto=format&fit=crop",
		description:  "Synthesized Thymosin Beta-4. Frequently investigated for its role in cellular migration and its potential to support tissue repair and inflammation reduction.",
		coaAvailable: true,
		inStock:      true,
		tags:         []string{"Mobility", "Inflammation", "Repair"},
	},
	{
		name:         "GHK-Cu",
		subtitle:     "Copper Tripeptide-1",
		priceCents:   4500,
		volume:       "10mL",
		dosage:       "50mg",
		category:     "Cosmetic",
		image:        "https://images.unsplash.com/photo-1579165466741-7f35a4755657?q=80&w=1000&auto=format&fit=crop",
		description:  "Naturally occurring copper complex. Extensively studied for its ability to stimulate collagen and elastin production in dermal research models.",
		coaAvailable: true,
		inStock:      true,
		tags:         []string{"Skin", "Hair", "Anti-Aging"},
	},
	{
		name:         "CJC-1295",
		subtitle:     "GHRH Analog (No DAC)",
		priceCents:   5800,
		volume:       "2mL",
		dosage:       "2mg",
		category:     "Performance",
		image:        "https://images.unsplash.com/photo-1587854692152-cbe660dbde88?q=80&w=1000&auto=format&fit=crop",
		description:  "Tetrasubstituted 30-amino-acid peptide hormone, functioning primarily as a GHRH analog. Modified for research stability.",
		coaAvailable: true,
		inStock:      false,
		tags:         []string{"Performance", "Growth", "Metabolism"},
	},
}

var guides = []guideRow{
	{
		title:    "Understanding Peptide Purity Analysis",
		category: "Education",
		readTime: "4 min read",
		image:    "https://images.unsplash.com/photo-1532094349884-543bc11b234d?q=80&w=1000&auto=format&fit=crop",
	},
	{
		title:    "Proper Reconstitution Protocols",
		category: "Handling",
		readTime: "6 min read",
		image:    "https://images.unsplash.com/photo-1579154204601-01588f351e67?q=80&w=1000&auto=format&fit=crop",
	},
	{
		title:    "Cold-Chain Storage Best Practices",
		category: "Handling",
		readTime: "3 min read",
		image:    "https://images.unsplash.com/photo-1583911860205-72f8ac8ddcbe?q=80&w=1000&auto=format&fit=crop",
	},
}
