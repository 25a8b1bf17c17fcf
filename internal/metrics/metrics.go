package metrics

const Namespace = "marks"
