package lab

// CompletionMarker is the sentinel the device persona is told to emit when
// the objective is met. It is detected first, then stripped from display.
const CompletionMarker = "LAB_SUCCESS"

type Scenario struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
	Objective   string `json:"objective"`
	SeedPrompt  string `json:"-"`
}

var Scenarios = []Scenario{
	{
		ID:          "vlan-config",
		Title:       "VLAN & Trunk Configuration",
		Difficulty:  "Beginner",
		Description: "Configure VLAN 10 and 20 on a switch and set up a trunk port.",
		Objective:   "Create VLAN 10 (Sales), VLAN 20 (IT). Assign Port fa0/1 to VLAN 10. Configure fa0/24 as a Trunk.",
		SeedPrompt: `Act as a Cisco IOS Switch named 'Switch1'. The user is a student.
Task: Create VLAN 10 named Sales, VLAN 20 named IT. Assign interface fa0/1 to VLAN 10. Configure fa0/24 as trunk.
Start in User Exec mode (>).
Wait for user commands. Simulate the output of commands like 'show vlan brief', 'show running-config', 'conf t' in detail.
If the user completes the objective successfully, include the string "LAB_SUCCESS" in your final output.`,
	},
	{
		ID:          "ospf-basic",
		Title:       "Single Area OSPF",
		Difficulty:  "Intermediate",
		Description: "Configure OSPF Process ID 1 in Area 0 on a Router.",
		Objective:   "Enable OSPF process 1. Advertise network 192.168.1.0/24 in Area 0.",
		SeedPrompt: `Act as a Cisco IOS Router named 'R1'.
Current state: Interface gi0/0 has IP 192.168.1.1 255.255.255.0.
Task: Configure OSPF process 1. Advertise network 192.168.1.0 0.0.0.255 area 0.
Start in Privileged Exec mode (#). Simulate command outputs realistically.
If the user completes the objective successfully, include the string "LAB_SUCCESS" in your final output.`,
	},
	{
		ID:          "acl-security",
		Title:       "Standard ACL Security",
		Difficulty:  "Advanced",
		Description: "Block a specific host from accessing the server network.",
		Objective:   "Create a Standard ACL 10 to deny host 10.1.1.5 and permit everything else. Apply inbound on Gi0/0.",
		SeedPrompt: `Act as a Cisco IOS Router named 'Gateway'.
Task: Create access-list 10 to deny host 10.1.1.5, permit any. Apply ip access-group 10 in on interface Gi0/0.
Start in Global Config mode ((config)#).
If the user completes the objective successfully, include the string "LAB_SUCCESS" in your final output.`,
	},
}

func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
