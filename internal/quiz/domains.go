package quiz

// The six CCNA 200-301 knowledge domains.
var Domains = []string{
	"1.0 Network Fundamentals",
	"2.0 Network Access",
	"3.0 IP Connectivity",
	"4.0 IP Services",
	"5.0 Security Fundamentals",
	"6.0 Automation and Programmability",
}

// SimulationWeights mirrors the official blueprint distribution. The
// generator is asked to honor these per-domain fractions, but fidelity is
// best-effort: returned domains are not re-verified against the table.
var SimulationWeights = map[string]float64{
	"1.0 Network Fundamentals":           0.20,
	"2.0 Network Access":                 0.20,
	"3.0 IP Connectivity":                0.25,
	"4.0 IP Services":                    0.10,
	"5.0 Security Fundamentals":          0.15,
	"6.0 Automation and Programmability": 0.10,
}

// GeneralDomain is the breakdown bucket for questions without a domain label.
const GeneralDomain = "General"
