package config

type KnowledgeConfig struct {
	BasePath string
	TopK     int
}

func GetKnowledgeConfig() (*KnowledgeConfig, error) {
	topK, err := getEnvInt("RETRIEVAL_TOP_K", 2)
	if err != nil {
		return nil, err
	}
	return &KnowledgeConfig{
		BasePath: getEnvOrDefault("KNOWLEDGE_BASE_PATH", "data/knowledge_base.md"),
		TopK:     topK,
	}, nil
}
