package main

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/devbook/internal/service"
)

type seedStats struct {
	technologies int
	modules      int
	posts        int
}

type samplePost struct {
	title   string
	concept string
	summary string
	status  string
	content string
}

type sampleModule struct {
	title string
	posts []samplePost
}

type sampleTechnology struct {
	input   service.TechnologyInput
	modules []sampleModule
}

var samples = []sampleTechnology{
	{
		input: service.TechnologyInput{
			Name:        "PHP",
			Category:    "Linguagens",
			Description: "Linguagem de script voltada para **web**.",
		},
		modules: []sampleModule{{
			title: "Orientação a Objetos",
			posts: []samplePost{{
				title:   "Introdução à POO em PHP",
				concept: "Classes descrevem objetos com estado e comportamento.",
				summary: "Classes, propriedades e métodos em PHP.",
				status:  "PUBLISHED",
				content: `{"blocks":[
					{"type":"heading","level":2,"text":"O que é uma classe"},
					{"type":"paragraph","text":"Uma <b>classe</b> é um molde para criar <i>objetos</i>."},
					{"type":"code","language":"php","filename":"User.php","code":"<?php\n\nclass User\n{\n    public string $name;\n}","explanation":"Uma classe com uma propriedade tipada."},
					{"type":"list","style":"numbered","items":["Declare a classe","Crie o objeto com new"]},
					{"type":"summary","text":"Classes agrupam dados e comportamento."}
				]}`,
			}, {
				title:   "Herança e interfaces",
				concept: "Herança reaproveita comportamento entre classes.",
				summary: "Rascunho sobre herança em PHP.",
				status:  "DRAFT",
				content: `{"blocks":[{"type":"paragraph","text":"Em construção."}]}`,
			}},
		}},
	},
	{
		input: service.TechnologyInput{
			Name:        "Docker",
			Category:    "Infra & DevOps",
			Description: "Containers para empacotar aplicações.",
		},
		modules: []sampleModule{{
			title: "Primeiros passos",
			posts: []samplePost{{
				title:   "Docker Compose na prática",
				concept: "Compose descreve vários serviços em um arquivo.",
				summary: "Subindo serviços com docker compose.",
				status:  "PUBLISHED",
				content: `{"blocks":[
					{"type":"paragraph","text":"Veja a <a href=\"https://docs.docker.com/compose/\">documentação</a>."},
					{"type":"code","language":"yaml","filename":"compose.yml","code":"services:\n  web:\n    image: nginx"},
					{"type":"summary","text":"Um arquivo, vários serviços."}
				]}`,
			}},
		}},
	},
}

// seed creates the sample tree. Technologies that already exist are skipped
// so the command can run repeatedly.
func seed(ctx context.Context, gdb *gorm.DB) (seedStats, error) {
	var stats seedStats
	technologies := service.NewTechnologyService(gdb)
	modules := service.NewModuleService(gdb)
	posts := service.NewPostService(gdb)

	for _, sample := range samples {
		tech, err := technologies.Create(ctx, sample.input)
		if errors.Is(err, service.ErrSlugConflict) {
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("create technology %s: %w", sample.input.Name, err)
		}
		stats.technologies++

		for _, m := range sample.modules {
			module, err := modules.Create(ctx, tech.ID, service.ModuleInput{Title: m.title})
			if err != nil {
				return stats, fmt.Errorf("create module %s: %w", m.title, err)
			}
			stats.modules++

			for _, p := range m.posts {
				_, err := posts.Create(ctx, service.PostInput{
					ModuleID: module.ID,
					Title:    p.title,
					Concept:  p.concept,
					Summary:  p.summary,
					IsPublic: service.Bool(true),
					Status:   p.status,
					Content:  []byte(p.content),
				})
				if err != nil {
					return stats, fmt.Errorf("create post %s: %w", p.title, err)
				}
				stats.posts++
			}
		}
	}
	return stats, nil
}
