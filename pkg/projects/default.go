package projects

// defaultConfig is the registry document compiled into the binary.
// It is used when no "--projects-config" file is provided, and its
// "default" project backs lookups for unknown project keys.
const defaultConfig = `
[organization]
name = "KubeStellar"
website = "https://kubestellar.io"
docs_url = "https://docs.kubestellar.io"
github_url = "https://github.com/kubestellar"
join_url = "http://kubestellar.io/join_us"
agenda_url = "https://docs.google.com/document/d/1XppfxSOD7AOX1lVVVIPWjpFkrxakfBfVzcybRg17-PM/"

[projects.default]
name = "KubeStellar"
description = "A flexible solution for multi-cluster configuration management for edge, multi-cloud, and hybrid cloud."
docs_url = "https://docs.kubestellar.io/"
github_url = "https://github.com/kubestellar/kubestellar"
maintainers = ["Andy Anderson"]

[projects.kubestellar]
name = "KubeStellar Core"
description = "Multi-cluster Kubernetes management."
docs_url = "https://docs.kubestellar.io/"
github_url = "https://github.com/kubestellar/kubestellar"
maintainers = ["Andy Anderson"]

[projects.kubeflex]
name = "KubeFlex"
description = "Flexible cluster management tools."
docs_url = "https://docs.kubestellar.io/latest/direct/kubeflex-intro/"
github_url = "https://github.com/kubestellar/kubeflex"
maintainers = ["Paolo Dettori", "Braulio Dumba"]

[projects.ui]
name = "KubeStellar UI"
description = "Web interface and dashboards."
docs_url = "https://docs.kubestellar.io/latest/direct/ui/"
github_url = "https://github.com/kubestellar/ui"
maintainers = ["Rahul Vishwakarma", "Andy Anderson"]

[projects.a2a]
name = "App-to-App (A2A)"
description = "Communication framework."
docs_url = "https://docs.kubestellar.io/"
github_url = "https://github.com/kubestellar/a2a"
maintainers = ["Andy Anderson"]
`
