package study

type Topic struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Domain string `json:"domain"`
	Icon   string `json:"icon"`
}

// Topics is the learning path, ordered.
var Topics = []Topic{
	{ID: "components", Title: "Network Components & Cabling", Domain: "1.0 Network Fundamentals", Icon: "Server"},
	{ID: "tcp-udp", Title: "TCP vs UDP & IPv4 Addressing", Domain: "1.0 Network Fundamentals", Icon: "Network"},
	{ID: "ipv6", Title: "IPv6 Address Types", Domain: "1.0 Network Fundamentals", Icon: "Hash"},

	{ID: "vlans", Title: "VLANs & 802.1Q Trunking", Domain: "2.0 Network Access", Icon: "Layers"},
	{ID: "stp", Title: "Spanning Tree Protocol (STP)", Domain: "2.0 Network Access", Icon: "GitBranch"},
	{ID: "etherchannel", Title: "EtherChannel (LACP)", Domain: "2.0 Network Access", Icon: "Link"},
	{ID: "wlan", Title: "Wireless Architectures & AP Modes", Domain: "2.0 Network Access", Icon: "Wifi"},

	{ID: "routing-table", Title: "Routing Table Logic", Domain: "3.0 IP Connectivity", Icon: "Map"},
	{ID: "static-routing", Title: "Static Routing & Default Routes", Domain: "3.0 IP Connectivity", Icon: "ArrowRight"},
	{ID: "ospf", Title: "OSPFv2 Concepts & Config", Domain: "3.0 IP Connectivity", Icon: "Activity"},
	{ID: "fhrp", Title: "First Hop Redundancy (HSRP)", Domain: "3.0 IP Connectivity", Icon: "Copy"},

	{ID: "nat", Title: "NAT (Static, Dynamic, PAT)", Domain: "4.0 IP Services", Icon: "Globe"},
	{ID: "dhcp-dns", Title: "DHCP & DNS", Domain: "4.0 IP Services", Icon: "Database"},
	{ID: "snmp-syslog", Title: "SNMP & Syslog", Domain: "4.0 IP Services", Icon: "FileText"},

	{ID: "security-concepts", Title: "Security Concepts (CIA, Threats)", Domain: "5.0 Security Fundamentals", Icon: "Shield"},
	{ID: "acls", Title: "Access Control Lists (ACLs)", Domain: "5.0 Security Fundamentals", Icon: "Lock"},
	{ID: "l2-security", Title: "L2 Security (DHCP Snooping, ARP)", Domain: "5.0 Security Fundamentals", Icon: "ShieldCheck"},
	{ID: "vpns", Title: "VPN Types (Site-to-Site, Remote)", Domain: "5.0 Security Fundamentals", Icon: "Unlock"},

	{ID: "automation-basics", Title: "Automation & SDN Controller", Domain: "6.0 Automation and Programmability", Icon: "Cpu"},
	{ID: "apis", Title: "REST APIs & JSON", Domain: "6.0 Automation and Programmability", Icon: "Code"},
}

func TopicByID(id string) (Topic, bool) {
	for _, t := range Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}
